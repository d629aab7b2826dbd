package view

import "github.com/benharosh/studio-cms/models"

// HomeView is the projection of the home page document.
type HomeView struct {
	HeroTitle        string                  `json:"heroTitle"`
	HeroSubtitle     string                  `json:"heroSubtitle"`
	HeroImage        string                  `json:"heroImage,omitempty"`
	FeaturedProjects *models.ProjectsContent `json:"featuredProjects,omitempty"`
	Quote            *models.QuoteContent    `json:"quote,omitempty"`
	CTA              *models.CTAContent      `json:"cta,omitempty"`
}

// ProjectHome builds the home page view model.
func ProjectHome(blocks []models.ContentBlock) HomeView {
	return HomeView{
		HeroTitle:        headingText(blocks, "hero-title"),
		HeroSubtitle:     textOf(blocks, "hero-subtitle"),
		HeroImage:        imageURL(blocks, "hero-image"),
		FeaturedProjects: projectsOf(blocks, "featured-projects"),
		Quote:            quoteOf(blocks, "quote-tadao"),
		CTA:              ctaOf(blocks, "home-cta"),
	}
}

// AboutView is the projection of the about page document.
type AboutView struct {
	Title  string               `json:"title"`
	Intro  string               `json:"intro"`
	Image  string               `json:"image,omitempty"`
	Values *models.ValueContent `json:"values,omitempty"`
	Quote  *models.QuoteContent `json:"quote,omitempty"`
}

// ProjectAbout builds the about page view model.
func ProjectAbout(blocks []models.ContentBlock) AboutView {
	return AboutView{
		Title:  headingText(blocks, "about-title"),
		Intro:  textOf(blocks, "about-intro"),
		Image:  imageURL(blocks, "about-image"),
		Values: valuesOf(blocks, "about-values"),
		Quote:  quoteOf(blocks, "about-quote"),
	}
}

// ProjectsView is the projection of the projects page document.
// The project list itself comes from the projects collection, not from
// content blocks; this view carries only the page copy.
type ProjectsView struct {
	Title string `json:"title"`
	Intro string `json:"intro"`
}

// ProjectProjects builds the projects page view model.
func ProjectProjects(blocks []models.ContentBlock) ProjectsView {
	return ProjectsView{
		Title: headingText(blocks, "projects-title"),
		Intro: textOf(blocks, "projects-intro"),
	}
}

// ServicesView is the projection of the services page document.
type ServicesView struct {
	Title    string               `json:"title"`
	Intro    string               `json:"intro"`
	Services *models.ValueContent `json:"services,omitempty"`
	CTA      *models.CTAContent   `json:"cta,omitempty"`
}

// ProjectServices builds the services page view model.
func ProjectServices(blocks []models.ContentBlock) ServicesView {
	return ServicesView{
		Title:    headingText(blocks, "services-title"),
		Intro:    textOf(blocks, "services-intro"),
		Services: valuesOf(blocks, "services-list"),
		CTA:      ctaOf(blocks, "services-cta"),
	}
}

// ContactView is the projection of the contact page document.
type ContactView struct {
	Title string             `json:"title"`
	Text  string             `json:"text"`
	CTA   *models.CTAContent `json:"cta,omitempty"`
}

// ProjectContact builds the contact page view model.
func ProjectContact(blocks []models.ContentBlock) ContactView {
	return ContactView{
		Title: headingText(blocks, "contact-title"),
		Text:  textOf(blocks, "contact-text"),
		CTA:   ctaOf(blocks, "contact-cta"),
	}
}
