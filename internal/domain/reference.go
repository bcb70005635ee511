package domain

// TrimesterPhase is the static description of one trimester card.
type TrimesterPhase struct {
	Trimester        Trimester `json:"trimester" yaml:"trimester"`
	Weeks            WeekRange `json:"weeks" yaml:"weeks"`
	Title            string    `json:"title" yaml:"title"`
	BabyDevelopment  string    `json:"baby_development" yaml:"baby_development"`
	MotherMilestones []string  `json:"mother_milestones" yaml:"mother_milestones"`
	KeyCheckups      []string  `json:"key_checkups" yaml:"key_checkups"`
	WarningSigns     []string  `json:"warning_signs" yaml:"warning_signs"`
}

// WeekHighlight is a single week-indexed milestone.
type WeekHighlight struct {
	Week  int    `json:"week" yaml:"week"`
	Event string `json:"event" yaml:"event"`
}

// CardGuide tells the worker when to show a colored card to the mother.
type CardGuide struct {
	Color string `json:"color" yaml:"color"`
	When  string `json:"when" yaml:"when"`
}

// RiskTier is one row of the risk classification guide. It never depends
// on the current week.
type RiskTier struct {
	Level             RiskLevel `json:"level" yaml:"level"`
	Label             string    `json:"label" yaml:"label"`
	Summary           string    `json:"summary" yaml:"summary"`
	IndicatorHeading  string    `json:"indicator_heading" yaml:"indicator_heading"`
	Indicators        []string  `json:"indicators" yaml:"indicators"`
	Action            string    `json:"action" yaml:"action"`
	ImmediateReferral bool      `json:"immediate_referral" yaml:"immediate_referral"`
	Card              CardGuide `json:"card" yaml:"card"`
}

// Checkpoint is a fixed marker on the horizontal timeline. A marker lights
// up once the current week reaches ActiveFrom. That is the marker's own
// week, except for the second-trimester marker, which lights up as soon as
// the second trimester begins.
type Checkpoint struct {
	Week       int    `json:"week" yaml:"week"`
	Label      string `json:"label" yaml:"label"`
	ActiveFrom int    `json:"active_from" yaml:"active_from"`
}

// DisplayWeek is the week printed under the marker; the start marker sits
// at week 0 but reads as week 1.
func (c Checkpoint) DisplayWeek() int {
	if c.Week == 0 {
		return MinWeek
	}
	return c.Week
}

const (
	PageTitle = "Pregnancy Journey Timeline"
	PageIntro = "Track the amazing 40-week journey of pregnancy. A visual guide for expecting mothers " +
		"and ASHA workers to understand key milestones, checkups, and development stages."
	RiskGuideIntro = "Use these visual cards to quickly identify and communicate risk levels during " +
		"pregnancy. Show these to mothers and families to explain the current health status."
	CareNoteTitle = "Important Note for ASHA Workers"
	ActionHeading = "Action for ASHA"
	CareNote      = "Every pregnancy is unique. This timeline provides general guidance only. Always refer " +
		"mothers to qualified healthcare providers for medical advice, prenatal care, and any concerns. " +
		"Regular checkups are essential for a healthy pregnancy outcome."
)

// Phases returns the three trimester phases in order. Each call builds a
// fresh copy.
func Phases() []TrimesterPhase {
	return []TrimesterPhase{
		{
			Trimester: TrimesterFirst,
			Weeks:     WeekRange{Start: 1, End: 12},
			Title:     "First Trimester",
			BabyDevelopment: "Baby's organs, heart, and nervous system begin forming. " +
				"By 12 weeks, baby is about 2 inches long.",
			MotherMilestones: []string{
				"Pregnancy confirmed",
				"Morning sickness may begin",
				"Fatigue and breast tenderness",
				"Rapid hormonal changes",
			},
			KeyCheckups: []string{
				"Initial prenatal visit (6-8 weeks)",
				"Blood tests and urine tests",
				"Dating ultrasound",
				"Folic acid supplementation",
			},
			WarningSigns: []string{
				"Avoid alcohol and smoking",
				"Take prescribed folic acid",
				"Report severe vomiting",
				"Watch for vaginal bleeding",
			},
		},
		{
			Trimester: TrimesterSecond,
			Weeks:     WeekRange{Start: 13, End: 26},
			Title:     "Second Trimester",
			BabyDevelopment: "Baby can hear sounds, suck thumb, and develop sleep patterns. " +
				"By 26 weeks, baby weighs about 2 lbs.",
			MotherMilestones: []string{
				"Energy levels improve",
				"Baby movements felt (quickening)",
				"Visible baby bump develops",
				"Reduced nausea",
			},
			KeyCheckups: []string{
				"Anatomy scan (18-22 weeks)",
				"Blood pressure monitoring",
				"Glucose screening test",
				"Iron supplementation if needed",
			},
			WarningSigns: []string{
				"Monitor blood pressure regularly",
				"Report reduced fetal movement",
				"Watch for signs of preeclampsia",
				"Maintain healthy diet",
			},
		},
		{
			Trimester: TrimesterThird,
			Weeks:     WeekRange{Start: 27, End: 40},
			Title:     "Third Trimester",
			BabyDevelopment: "Baby's lungs mature, brain develops rapidly. " +
				"Baby gains weight for delivery, reaching 6-9 lbs by 40 weeks.",
			MotherMilestones: []string{
				"Braxton Hicks contractions",
				"Increased discomfort",
				"Frequent urination",
				"Preparing for delivery",
			},
			KeyCheckups: []string{
				"Weekly visits from 36 weeks",
				"Monitor fetal position",
				"Group B strep test",
				"Birth plan discussion",
			},
			WarningSigns: []string{
				"Count daily fetal movements",
				"Report signs of preterm labor",
				"Watch for water breaking",
				"Know when to go to hospital",
			},
		},
	}
}

// PhaseFor returns the phase card for t.
func PhaseFor(t Trimester) (TrimesterPhase, bool) {
	for _, p := range Phases() {
		if p.Trimester == t {
			return p, true
		}
	}
	return TrimesterPhase{}, false
}

// Highlights returns the week-by-week milestones, ascending by week.
func Highlights() []WeekHighlight {
	return []WeekHighlight{
		{Week: 4, Event: "Missed period, pregnancy test positive"},
		{Week: 8, Event: "Baby's heart beating, first ultrasound"},
		{Week: 12, Event: "End of first trimester, risk of miscarriage drops"},
		{Week: 20, Event: "Anatomy scan, can learn baby's sex"},
		{Week: 24, Event: "Baby can survive with medical help if born"},
		{Week: 28, Event: "Baby opens eyes, can sense light"},
		{Week: 32, Event: "Baby practices breathing movements"},
		{Week: 36, Event: "Baby is considered early term"},
		{Week: 40, Event: "Due date - ready for birth!"},
	}
}

// Checkpoints returns the four fixed timeline markers.
func Checkpoints() []Checkpoint {
	return []Checkpoint{
		{Week: 0, Label: "Start", ActiveFrom: MinWeek},
		{Week: 12, Label: "Trimester 1", ActiveFrom: 12},
		{Week: 26, Label: "Trimester 2", ActiveFrom: 13},
		{Week: 40, Label: "Birth", ActiveFrom: MaxWeek},
	}
}

// RiskTiers returns the low, medium and high tiers in that order.
func RiskTiers() []RiskTier {
	return []RiskTier{
		{
			Level:            RiskLow,
			Label:            "Low Risk - Safe",
			Summary:          "Normal pregnancy progression",
			IndicatorHeading: "Indicators",
			Indicators: []string{
				"Normal blood pressure (< 120/80)",
				"Blood sugar in normal range",
				"No concerning symptoms",
				"Regular fetal movements",
				"All tests within normal limits",
			},
			Action: "Continue routine prenatal care. Schedule regular checkups. " +
				"Encourage healthy diet, rest, and prenatal vitamins.",
			Card: CardGuide{Color: "Green", When: "When all vitals are normal and mother feels well"},
		},
		{
			Level:            RiskMedium,
			Label:            "Medium Risk - Monitor",
			Summary:          "Requires close monitoring",
			IndicatorHeading: "Warning Signs",
			Indicators: []string{
				"Blood pressure 120-139/80-89",
				"Borderline blood sugar levels",
				"Mild swelling in hands/feet",
				"History of previous complications",
				"Age under 18 or over 35",
			},
			Action: "Increase monitoring frequency. Check vital signs weekly. " +
				"Refer to ANM or PHC. Track symptoms carefully.",
			Card: CardGuide{Color: "Yellow", When: "When there are mild symptoms or borderline readings"},
		},
		{
			Level:            RiskHigh,
			Label:            "High Risk - Urgent",
			Summary:          "Immediate medical attention needed",
			IndicatorHeading: "Danger Signs",
			Indicators: []string{
				"Blood pressure ≥ 140/90",
				"High blood sugar (diabetes)",
				"Severe headache or vision changes",
				"Vaginal bleeding",
				"No fetal movement for 12+ hours",
			},
			Action: "Contact doctor immediately. Arrange transport to hospital. " +
				"Do not delay. This is a medical emergency.",
			ImmediateReferral: true,
			Card:              CardGuide{Color: "Red", When: "When there are serious symptoms requiring urgent care"},
		},
	}
}

// RiskTierFor returns the tier for level.
func RiskTierFor(level RiskLevel) (RiskTier, bool) {
	for _, t := range RiskTiers() {
		if t.Level == level {
			return t, true
		}
	}
	return RiskTier{}, false
}
