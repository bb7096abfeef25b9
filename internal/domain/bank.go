package domain

// DefaultBankID names the built-in DIN 8580 question bank.
const DefaultBankID = "din8580"

// DefaultBank returns the fixed ten-question DIN 8580 bank used when no
// backing store is configured. The content is German by design; the quiz
// is not internationalized.
func DefaultBank() Bank {
	return Bank{
		ID: DefaultBankID,
		Questions: []Question{
			{
				ID:   1,
				Type: MultipleChoice,
				Text: "Was ist der primäre Zweck der DIN 8580?",
				Options: []string{
					"Festlegung von Sicherheitsschrauben",
					"Einteilung aller Fertigungsverfahren in Hauptgruppen",
					"Normung von Maschinenelementen",
					"Regelung der Arbeitszeit in der Produktion",
				},
				CorrectAnswer: "Einteilung aller Fertigungsverfahren in Hauptgruppen",
				Explanation:   "Die DIN 8580 dient der systematischen Einteilung aller Fertigungsverfahren nach gemeinsamen Merkmalen in sechs Hauptgruppen.",
			},
			{
				ID:   2,
				Type: MultipleChoice,
				Text: "Welches dieser Verfahren gehört zur Hauptgruppe 'Urformen'?",
				Options: []string{
					"Bohren",
					"Gießen",
					"Schweißen",
					"Löten",
				},
				CorrectAnswer: "Gießen",
				Explanation:   "Urformen ist das Fertigen eines festen Körpers aus formlosem Stoff (z.B. Schmelze beim Gießen) durch Schaffen des Zusammenhalts.",
			},
			{
				ID:            3,
				Type:          TrueFalse,
				Text:          "Trennen ist das Ändern der Form eines festen Körpers unter Beibehaltung der Masse und des Zusammenhalts.",
				CorrectAnswer: "false",
				Explanation:   "Falsch. Das ist die Definition von Umformen. Trennen ist das Ändern der Form durch Vermindern des Zusammenhalts (z.B. Zerspanen).",
			},
			{
				ID:   4,
				Type: MultipleChoice,
				Text: "Zu welcher Hauptgruppe gehört das 'Schweißen'?",
				Options: []string{
					"Stoffeigenschaften ändern",
					"Umformen",
					"Fügen",
					"Beschichten",
				},
				CorrectAnswer: "Fügen",
				Explanation:   "Fügen ist das dauerhafte Verbinden von zwei oder mehr Werkstücken, wozu das Schweißen als stoffschlüssiges Verfahren zählt.",
			},
			{
				ID:            5,
				Type:          TrueFalse,
				Text:          "Beim Umformen bleibt die Masse des Werkstücks näherungsweise gleich.",
				CorrectAnswer: "true",
				Explanation:   "Richtig. Umformen ist das plastische Ändern der Form ohne Wegnahme von Material (Masse bleibt gleich).",
			},
			{
				ID:   6,
				Type: MultipleChoice,
				Text: "Welches Verfahren gehört zur Hauptgruppe 'Stoffeigenschaften ändern'?",
				Options: []string{
					"Härten",
					"Lackieren",
					"Sägen",
					"Walzen",
				},
				CorrectAnswer: "Härten",
				Explanation:   "Härten ändert das Gefüge des Werkstoffs und damit seine mechanischen Eigenschaften, ohne die äußere Form wesentlich zu verändern.",
			},
			{
				ID:            7,
				Type:          TrueFalse,
				Text:          "Beschichten ist das Aufbringen einer fest haftenden Schicht aus formlosem Stoff auf ein Werkstück.",
				CorrectAnswer: "true",
				Explanation:   "Richtig. Typische Beispiele sind Lackieren, Galvanisieren oder Pulverbeschichten.",
			},
			{
				ID:   8,
				Type: MultipleChoice,
				Text: "In welche Hauptgruppe lässt sich das 'Fräsen' einordnen?",
				Options: []string{
					"Urformen",
					"Trennen",
					"Umformen",
					"Beschichten",
				},
				CorrectAnswer: "Trennen",
				Explanation:   "Fräsen ist ein spanendes Fertigungsverfahren und gehört somit zur Hauptgruppe Trennen (Vermindern des Zusammenhalts).",
			},
			{
				ID:            9,
				Type:          TrueFalse,
				Text:          "Die DIN 8580 unterscheidet insgesamt 8 Hauptgruppen.",
				CorrectAnswer: "false",
				Explanation:   "Falsch. Die DIN 8580 definiert genau 6 Hauptgruppen: Urformen, Umformen, Trennen, Fügen, Beschichten und Stoffeigenschaften ändern.",
			},
			{
				ID:   10,
				Type: MultipleChoice,
				Text: "Welches dieser Verfahren ist KEIN Trennverfahren?",
				Options: []string{
					"Drehen",
					"Schleifen",
					"Erodieren",
					"Kleben",
				},
				CorrectAnswer: "Kleben",
				Explanation:   "Kleben gehört zur Hauptgruppe 'Fügen', da hier Werkstücke miteinander verbunden werden, statt Material abzutrennen.",
			},
		},
	}
}
