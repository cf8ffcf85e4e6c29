// Package profile holds the static portfolio content rendered by the site.
package profile

import "strings"

type Link struct {
	Label string
	Href  string
}

type Language struct {
	Name  string
	Level string
}

// Frame is the border style of a badge. Empty is the default frame.
type Frame string

const (
	FrameGold   Frame = "gold"
	FramePurple Frame = "purple"
	FrameBlue   Frame = "blue"
)

type Badge struct {
	Src       string
	Alt       string
	HowToEarn string
	Href      string
	Frame     Frame
}

type Diploma struct {
	Title       string
	Description string
}

type Study struct {
	Title       string
	Place       string
	Period      string
	Description []string
	Bullets     []string
	Details     []string
	Badges      []Badge
	Diploma     *Diploma
}

type Experience struct {
	Role    string
	Company string
	Period  string
	Details []string
	Summary string
}

type Project struct {
	Name        string
	Description string
	Href        string
	Tags        []string
}

type SkillGroup struct {
	Title string
	Items []string
}

type Avatar struct {
	Src string
	Alt string
}

type Section struct {
	ID    string
	Label string
}

type Profile struct {
	Name       string
	Role       string
	Location   string
	Avatar     Avatar
	Summary    string
	Languages  []Language
	Links      []Link
	Studies    []Study
	Experience []Experience
	Projects   []Project
	Skills     []SkillGroup
	Tech       []string
}

// Link returns the href of the link labelled label, case-insensitively.
func (p Profile) Link(label string) (string, bool) {
	for _, l := range p.Links {
		if strings.EqualFold(l.Label, label) {
			return l.Href, true
		}
	}
	return "", false
}

// Badges flattens the badges of every study.
func (p Profile) Badges() []Badge {
	var badges []Badge
	for _, s := range p.Studies {
		badges = append(badges, s.Badges...)
	}
	return badges
}

// Sections is the page navigation, in order.
func Sections() []Section {
	return []Section{
		{ID: "hero", Label: "Inicio"},
		{ID: "about", Label: "Sobre mí"},
		{ID: "experience", Label: "Experiencia"},
		{ID: "education", Label: "Educación"},
		{ID: "projects", Label: "Proyectos"},
		{ID: "skills", Label: "Habilidades"},
		{ID: "contact", Label: "Contacto"},
	}
}
