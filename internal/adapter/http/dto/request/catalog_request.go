package request

import (
	"strings"

	"assistencia_tecnica/internal/domain/entities"
)

type DescriptionRequest struct {
	Titulo      string   `json:"titulo"`
	Descricao   string   `json:"descricao"`
	Categoria   string   `json:"categoria"`
	Preco       float64  `json:"preco"`
	Duracao     int      `json:"duracao"`
	Ativo       *bool    `json:"ativo"`
	Tags        []string `json:"tags"`
	Observacoes string   `json:"observacoes"`
}

// ToInput creates active entries unless ativo is sent as false.
func (r DescriptionRequest) ToInput() entities.ServiceDescriptionInput {
	active := true
	if r.Ativo != nil {
		active = *r.Ativo
	}
	return entities.ServiceDescriptionInput{
		Title:       strings.TrimSpace(r.Titulo),
		Description: strings.TrimSpace(r.Descricao),
		Category:    strings.TrimSpace(r.Categoria),
		Price:       r.Preco,
		Duration:    r.Duracao,
		Active:      active,
		Tags:        cleanTags(r.Tags),
		Notes:       strings.TrimSpace(r.Observacoes),
	}
}

type DescriptionPatchRequest struct {
	Titulo      *string   `json:"titulo"`
	Descricao   *string   `json:"descricao"`
	Categoria   *string   `json:"categoria"`
	Preco       *float64  `json:"preco"`
	Duracao     *int      `json:"duracao"`
	Ativo       *bool     `json:"ativo"`
	Tags        *[]string `json:"tags"`
	Observacoes *string   `json:"observacoes"`
}

func (r DescriptionPatchRequest) ToPatch() entities.ServiceDescriptionPatch {
	p := entities.ServiceDescriptionPatch{
		Title:       trimmed(r.Titulo),
		Description: trimmed(r.Descricao),
		Category:    trimmed(r.Categoria),
		Price:       r.Preco,
		Duration:    r.Duracao,
		Active:      r.Ativo,
		Notes:       trimmed(r.Observacoes),
	}
	if r.Tags != nil {
		tags := cleanTags(*r.Tags)
		p.Tags = &tags
	}
	return p
}

type SetActiveRequest struct {
	Ativo *bool `json:"ativo" binding:"required"`
}

type ProfileRequest struct {
	Nome        string `json:"nome"`
	Email       string `json:"email"`
	Telefone    string `json:"telefone"`
	Endereco    string `json:"endereco"`
	Avatar      string `json:"avatar"`
	Observacoes string `json:"observacoes"`
}

func (r ProfileRequest) ToInput() entities.UserProfileInput {
	return entities.UserProfileInput{
		Name:    strings.TrimSpace(r.Nome),
		Email:   strings.TrimSpace(r.Email),
		Phone:   strings.TrimSpace(r.Telefone),
		Address: strings.TrimSpace(r.Endereco),
		Avatar:  strings.TrimSpace(r.Avatar),
		Notes:   strings.TrimSpace(r.Observacoes),
	}
}

type ProfilePatchRequest struct {
	Nome        *string `json:"nome"`
	Telefone    *string `json:"telefone"`
	Endereco    *string `json:"endereco"`
	Avatar      *string `json:"avatar"`
	Observacoes *string `json:"observacoes"`
}

func (r ProfilePatchRequest) ToPatch() entities.UserProfilePatch {
	return entities.UserProfilePatch{
		Name:    trimmed(r.Nome),
		Phone:   trimmed(r.Telefone),
		Address: trimmed(r.Endereco),
		Avatar:  trimmed(r.Avatar),
		Notes:   trimmed(r.Observacoes),
	}
}

// cleanTags trims tags and drops empty and repeated ones.
func cleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
