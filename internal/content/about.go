package content

import "golang.org/x/text/language"

// DefaultPortraitSrc is where the embedded portrait is served from.
const DefaultPortraitSrc = "/static/images/portrait.jpg"

// About returns the built-in content of the About page.
func About() PageContent {
	return PageContent{
		Metadata: PageMetadata{
			Title:       "About",
			Description: "I'm Mariana Garciagodoy. I live in Paris, where I conduct ensembles of all sizes.",
		},
		Heading: "I’m Mariana. I change lives through music.",
		Paragraphs: []string{
			"Praised for her clear technique, dynamic expressiveness, and her warm rapport with the musicians she works with, Mariana Garciagodoy Cervantes is an international conductor who warrants watching. A natural musical elegance belies her extensive training in classical dance in her younger years in her native Mexico City. Since arriving in France, she has become a champion of French music, premiering numerous works in Paris and Châteauroux, where she is music director of the Orchestre de la Musique Municipale. She has also worked with international soloists in a multitude of genres, and will be conducting a concert to welcome the arrival of the Olympic Flame for the 2024 Olympic Games.",
			"A dynamic and clear control of gesture represents her education from leading institutions, including a Master's in choral conducting from the University of Tennessee, and more recently a Diplôme Supérieure in orchestral conducting from École Normale de Musique de Paris. The hexalingual Mariana has bolstered her training with masterclasses across the world, including the United States, Germany, Romania and Finland.",
			"As Mariana's career grows, she always keeps one thing at the forefront: a dedication to a spirit of collaboration in all that she does. She believes everyone can find meaning and belonging in musical experiences, a mindset which is contagious to her colleagues and audiences everywhere.",
		},
		Portrait: Portrait{Src: DefaultPortraitSrc, Alt: ""},
		Links: []LinkEntry{
			// The Instagram profile has no address yet.
			{Href: "#", Icon: IconInstagram, Label: "Follow on Instagram", Class: "mt-4"},
			{Href: "https://www.linkedin.com/in/mariana-garciagodoy-111b6b32/", Icon: IconLinkedIn, Label: "Follow on LinkedIn", Class: "mt-4"},
			{Href: "mailto:marciagodoy@hotmail.com", Icon: IconMail, Label: "marciagodoy@hotmail.com", Class: "mt-8 border-t pt-8"},
		},
		LanguagesHeading: "Languages",
		Languages: []LanguageFact{
			{Level: "Native Fluency", Languages: LanguageList{language.Spanish, language.English}},
			{Level: "Bilingual Proficiency", Languages: LanguageList{language.German, language.French}},
			{Level: "Limited Working Proficiency", Languages: LanguageList{language.Italian, language.Russian}},
		},
	}
}
