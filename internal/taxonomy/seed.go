package taxonomy

// subjectAliases maps common subject spellings to catalog names.
var subjectAliases = map[string]string{
	"maths":       "Math",
	"mathematics": "Math",
	"physical":    "Physics",
	"chem":        "Chemistry",
	"ela":         "English",
}

// seedSubjects defines the per-subject curriculum catalogs: subject →
// base branch (chapter level) → detailed branch (topic level).
var seedSubjects = []Subject{
	{
		Name: "Math",
		Branches: []BaseBranch{
			{
				Name: "Arithmetic - Foundations",
				Children: []string{
					"Whole Number Operations",
					"Fractions & Decimals",
					"Ratios & Percentages",
					"Order of Operations",
				},
			},
			{
				Name: "Algebra - Foundations",
				Children: []string{
					"Linear Equations - One Variable",
					"Linear Equations - Two Variables",
					"Inequalities",
					"Polynomials & Factoring",
				},
			},
			{
				Name: "Geometry - Plane",
				Children: []string{
					"Angles & Triangles",
					"Circles",
					"Area & Perimeter",
					"Congruence & Similarity",
				},
			},
			{
				Name: "Statistics & Probability",
				Children: []string{
					"Data Representation",
					"Mean, Median & Mode",
					"Basic Probability",
				},
			},
		},
	},
	{
		Name: "Physics",
		Branches: []BaseBranch{
			{
				Name: "Mechanics",
				Children: []string{
					"Kinematics",
					"Newton's Laws",
					"Work & Energy",
					"Momentum",
				},
			},
			{
				Name: "Electricity & Magnetism",
				Children: []string{
					"Circuits",
					"Ohm's Law",
					"Magnetic Fields",
				},
			},
			{
				Name: "Waves & Optics",
				Children: []string{
					"Wave Properties",
					"Sound",
					"Reflection & Refraction",
				},
			},
		},
	},
	{
		Name: "Chemistry",
		Branches: []BaseBranch{
			{
				Name: "Matter & Structure",
				Children: []string{
					"Atomic Structure",
					"Periodic Table",
					"Chemical Bonding",
				},
			},
			{
				Name: "Reactions",
				Children: []string{
					"Balancing Equations",
					"Stoichiometry",
					"Acids & Bases",
				},
			},
		},
	},
	{
		Name: "English",
		Branches: []BaseBranch{
			{
				Name: "Grammar",
				Children: []string{
					"Tenses",
					"Subject-Verb Agreement",
					"Parts of Speech",
				},
			},
			{
				Name: "Reading Comprehension",
				Children: []string{
					"Main Idea & Detail",
					"Inference",
					"Vocabulary in Context",
				},
			},
			{
				Name: "Writing",
				Children: []string{
					"Sentence Structure",
					"Punctuation",
					"Paragraph Organization",
				},
			},
		},
	},
}
