package poem

import "github.com/lloydmeta/notably/internal/domain/poem"

type Poem struct {
	Title string `json:"title" example:"Ozymandias"`
	Text  string `json:"text" example:"I met a traveller from an antique land..."`
}

func FromDomainPoem(p *poem.Poem) Poem {
	return Poem{
		Title: p.Title,
		Text:  p.Text,
	}
}
