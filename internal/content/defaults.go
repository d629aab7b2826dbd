package content

import "github.com/benharosh/studio-cms/models"

// DefaultBlocks returns the built-in block array used to seed the page
// document of the given page the first time it is requested and no stored
// document exists.
//
// The function is pure and deterministic: the same pageID always yields the
// same array. An unrecognized pageID yields an empty slice, not an error.
func DefaultBlocks(pageID string) []models.ContentBlock {
	switch pageID {
	case models.PageHome:
		return homeDefaults()
	case models.PageAbout:
		return aboutDefaults()
	case models.PageProjects:
		return projectsDefaults()
	case models.PageService:
		return serviceDefaults()
	case models.PageContact:
		return contactDefaults()
	default:
		return []models.ContentBlock{}
	}
}

func homeDefaults() []models.ContentBlock {
	return []models.ContentBlock{
		{
			ID:      "hero-title",
			Type:    models.BlockHeading,
			Content: models.HeadingContent{Text: "אדריכלות שמספרת סיפור", Level: 1},
			Visible: true, Editable: true, Order: 1,
		},
		{
			ID:      "hero-subtitle",
			Type:    models.BlockText,
			Content: models.TextContent{Text: "סטודיו לאדריכלות ועיצוב פנים — תכנון מדויק, חומרים כנים ואור טבעי"},
			Visible: true, Editable: true, Order: 2,
		},
		{
			ID:      "hero-image",
			Type:    models.BlockImage,
			Content: models.ImageContent{URL: "https://images.unsplash.com/photo-1600585154340-be6161a56a0c"},
			Visible: true, Editable: true, Order: 3,
		},
		{
			ID:   "featured-projects",
			Type: models.BlockProjects,
			Content: models.ProjectsContent{
				Title:       "פרויקטים נבחרים",
				Description: "מבחר עבודות מהשנים האחרונות",
				Projects: []models.ProjectCard{
					{Title: "בית פרטי ברמת השרון", Category: "מגורים", Image: "https://images.unsplash.com/photo-1600607687939-ce8a6c25118c", Description: "בית משפחתי עם חצר פנימית וחזית אבן"},
					{Title: "דירת גג בתל אביב", Category: "שיפוץ", Image: "https://images.unsplash.com/photo-1600566753086-00f18fb6b3ea", Description: "פתיחת חללים ומרפסת היקפית"},
					{Title: "משרדי הייטק בהרצליה", Category: "מסחרי", Image: "https://images.unsplash.com/photo-1497366216548-37526070297c", Description: "קומת עבודה פתוחה עם חדרי שקט"},
				},
			},
			Visible: true, Editable: true, Order: 4,
		},
		{
			ID:      "quote-tadao",
			Type:    models.BlockQuote,
			Content: models.QuoteContent{Text: "לעולם אין לראות באור דבר מובן מאליו", Author: "טדאו אנדו"},
			Visible: true, Editable: false, Order: 5,
		},
		{
			ID:   "home-cta",
			Type: models.BlockCTA,
			Content: models.CTAContent{
				Title:           "מתחילים פרויקט?",
				Description:     "נשמח ללוות אתכם משלב הרעיון ועד המסירה",
				PrimaryButton:   models.CTAButton{Text: "צרו קשר", Link: "/contact"},
				SecondaryButton: models.CTAButton{Text: "לכל הפרויקטים", Link: "/projects"},
			},
			Visible: true, Editable: true, Order: 6,
		},
	}
}

func aboutDefaults() []models.ContentBlock {
	return []models.ContentBlock{
		{
			ID:      "about-title",
			Type:    models.BlockHeading,
			Content: models.HeadingContent{Text: "על הסטודיו", Level: 1},
			Visible: true, Editable: true, Order: 1,
		},
		{
			ID:      "about-intro",
			Type:    models.BlockText,
			Content: models.TextContent{Text: "הסטודיו הוקם מתוך אמונה שאדריכלות טובה נולדת מהקשבה — למקום, לאור ולאנשים שיחיו בו. אנחנו מלווים כל פרויקט מהסקיצה הראשונה ועד המפתח."},
			Visible: true, Editable: true, Order: 2,
		},
		{
			ID:      "about-image",
			Type:    models.BlockImage,
			Content: models.ImageContent{URL: "https://images.unsplash.com/photo-1503387762-592deb58ef4e"},
			Visible: true, Editable: true, Order: 3,
		},
		{
			ID:   "about-values",
			Type: models.BlockValue,
			Content: models.ValueContent{
				Title:       "הערכים שלנו",
				Description: "מה שמנחה אותנו בכל פרויקט",
				Values: []models.ValueItem{
					{Icon: "ruler", Title: "דיוק", Description: "תכנון מוקפד עד הפרט האחרון"},
					{Icon: "sun", Title: "אור טבעי", Description: "כל חלל מתוכנן סביב מסלול השמש"},
					{Icon: "leaf", Title: "קיימות", Description: "חומרים מקומיים ובנייה חסכונית"},
				},
			},
			Visible: true, Editable: true, Order: 4,
		},
		{
			ID:      "about-quote",
			Type:    models.BlockQuote,
			Content: models.QuoteContent{Text: "אלוהים נמצא בפרטים הקטנים", Author: "מיס ון דר רוהה"},
			Visible: true, Editable: false, Order: 5,
		},
	}
}

func projectsDefaults() []models.ContentBlock {
	return []models.ContentBlock{
		{
			ID:      "projects-title",
			Type:    models.BlockHeading,
			Content: models.HeadingContent{Text: "הפרויקטים שלנו", Level: 1},
			Visible: true, Editable: true, Order: 1,
		},
		{
			ID:      "projects-intro",
			Type:    models.BlockText,
			Content: models.TextContent{Text: "מבחר עבודות הסטודיו — מגורים, מסחר ושיפוצים"},
			Visible: true, Editable: true, Order: 2,
		},
	}
}

func serviceDefaults() []models.ContentBlock {
	return []models.ContentBlock{
		{
			ID:      "services-title",
			Type:    models.BlockHeading,
			Content: models.HeadingContent{Text: "השירותים שלנו", Level: 1},
			Visible: true, Editable: true, Order: 1,
		},
		{
			ID:      "services-intro",
			Type:    models.BlockText,
			Content: models.TextContent{Text: "ליווי אדריכלי מלא, משלב האיתור ועד האכלוס"},
			Visible: true, Editable: true, Order: 2,
		},
		{
			ID:   "services-list",
			Type: models.BlockValue,
			Content: models.ValueContent{
				Title:       "תחומי עיסוק",
				Description: "",
				Values: []models.ValueItem{
					{Icon: "home", Title: "תכנון אדריכלי", Description: "תכנון בתים פרטיים ותוספות בנייה", Features: []string{"סקיצות ראשוניות", "היתרי בנייה", "תוכניות עבודה"}},
					{Icon: "sofa", Title: "עיצוב פנים", Description: "עיצוב חללי מגורים ומסחר", Features: []string{"תוכנית ריהוט", "בחירת חומרים", "תאורה"}},
					{Icon: "hammer", Title: "ליווי ביצוע", Description: "פיקוח עליון לאורך הבנייה", Features: []string{"סיורי קבלנים", "לוחות זמנים", "בקרת איכות"}},
				},
			},
			Visible: true, Editable: true, Order: 3,
		},
		{
			ID:   "services-cta",
			Type: models.BlockCTA,
			Content: models.CTAContent{
				Title:           "רוצים לשמוע עוד?",
				Description:     "פגישת היכרות ראשונה — ללא עלות",
				PrimaryButton:   models.CTAButton{Text: "לתיאום פגישה", Link: "/contact"},
				SecondaryButton: models.CTAButton{Text: "לפרויקטים שלנו", Link: "/projects"},
			},
			Visible: true, Editable: true, Order: 4,
		},
	}
}

func contactDefaults() []models.ContentBlock {
	return []models.ContentBlock{
		{
			ID:      "contact-title",
			Type:    models.BlockHeading,
			Content: models.HeadingContent{Text: "צרו קשר", Level: 1},
			Visible: true, Editable: true, Order: 1,
		},
		{
			ID:      "contact-text",
			Type:    models.BlockText,
			Content: models.TextContent{Text: "נשמח לשמוע על הפרויקט שלכם. השאירו פרטים ונחזור אליכם תוך יום עסקים."},
			Visible: true, Editable: true, Order: 2,
		},
		{
			ID:   "contact-cta",
			Type: models.BlockCTA,
			Content: models.CTAContent{
				Title:           "מעדיפים לדבר?",
				Description:     "אפשר גם בטלפון או בוואטסאפ",
				PrimaryButton:   models.CTAButton{Text: "חייגו אלינו", Link: "tel:+97235555555"},
				SecondaryButton: models.CTAButton{Text: "וואטסאפ", Link: "https://wa.me/972505555555"},
			},
			Visible: true, Editable: true, Order: 3,
		},
	}
}

// DefaultSiteSettings returns the built-in site-wide settings document used
// to seed the settings store on first access.
func DefaultSiteSettings() models.SiteSettings {
	return models.SiteSettings{
		Contact: models.ContactInfo{
			Phone:    "03-5555555",
			Email:    "studio@benharosh.co.il",
			Address:  "שדרות רוטשילד 45, תל אביב",
			WhatsApp: "+972505555555",
		},
		Social: models.SocialLinks{
			Instagram: "https://instagram.com/benharosh.studio",
			Facebook:  "https://facebook.com/benharosh.studio",
		},
		Company: models.CompanyInfo{
			Name:    "בן הרוש אדריכלים",
			Tagline: "אדריכלות ועיצוב פנים",
			About:   "סטודיו בוטיק לאדריכלות ועיצוב פנים הפועל מאז 2012",
		},
		Buttons: models.ButtonLabels{
			ContactUs:    "צרו קשר",
			ViewProjects: "לכל הפרויקטים",
			SendMessage:  "שליחה",
			ReadMore:     "קראו עוד",
		},
		SEO: models.SEODefaults{
			Title:       "בן הרוש אדריכלים | אדריכלות ועיצוב פנים",
			Description: "סטודיו בוטיק לאדריכלות ועיצוב פנים בתל אביב",
			Keywords:    "אדריכלות, עיצוב פנים, תכנון בתים",
		},
		WorkingHours: []models.WorkingDay{
			{Day: "ראשון-חמישי", Open: "09:00", Close: "18:00"},
			{Day: "שישי", Open: "09:00", Close: "13:00"},
			{Day: "שבת", Closed: true},
		},
		Language: "he",
	}
}

// DefaultDesignSettings returns the built-in theme-token document used to
// seed the settings store on first access.
func DefaultDesignSettings() models.DesignSettings {
	return models.DesignSettings{
		Dark: models.Palette{
			Background: "#1a1a1a",
			Surface:    "#242424",
			Text:       "#f5f2ed",
			Accent:     "#c9a227",
		},
		Light: models.Palette{
			Background: "#f5f2ed",
			Surface:    "#ffffff",
			Text:       "#1a1a1a",
			Accent:     "#8c6d1f",
		},
		FontFamily: "Heebo",
		Layout:     "grid",
		Columns:    3,
		Spacing:    "comfortable",
	}
}
