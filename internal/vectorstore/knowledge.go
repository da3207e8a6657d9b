package vectorstore

// knowledgeBase is the curated set of documents seeded at startup. The
// content is treated as a behavioral contract: retrieval tests and the
// relevance heuristics in the orchestrator are written against it.
var knowledgeBase = []Document{
	{
		ID:      "anxiety_basics",
		Content: "Anxiety is a normal human emotion characterized by feelings of tension, worried thoughts, and physical changes. Common symptoms include restlessness, fatigue, difficulty concentrating, irritability, muscle tension, and sleep disturbance. Anxiety becomes a disorder when these feelings are excessive, persistent, and interfere with daily life.",
		Metadata: Metadata{
			Title:    "Understanding Anxiety Disorders",
			Category: "Mental Health Conditions",
			Tags:     []string{"anxiety", "symptoms", "mental health"},
			Source:   "Clinical Guidelines",
		},
	},
	{
		ID:      "depression_overview",
		Content: "Depression is a mood disorder that causes persistent feelings of sadness and loss of interest. It affects how you feel, think, and behave and can lead to various emotional and physical problems. Symptoms include persistent sad mood, loss of interest in activities, significant weight loss or gain, sleep disturbances, fatigue, feelings of worthlessness, and difficulty concentrating.",
		Metadata: Metadata{
			Title:    "Depression: Signs and Symptoms",
			Category: "Mental Health Conditions",
			Tags:     []string{"depression", "mood disorder", "symptoms"},
			Source:   "Clinical Guidelines",
		},
	},
	{
		ID:      "breathing_techniques",
		Content: "Deep breathing exercises can help reduce anxiety and stress. The 4-7-8 technique involves inhaling for 4 counts, holding for 7 counts, and exhaling for 8 counts. Box breathing involves breathing in for 4 counts, holding for 4, exhaling for 4, and holding empty for 4. These techniques activate the parasympathetic nervous system and promote relaxation.",
		Metadata: Metadata{
			Title:    "Breathing Techniques for Anxiety",
			Category: "Coping Strategies",
			Tags:     []string{"breathing", "anxiety", "relaxation", "techniques"},
			Source:   "Therapeutic Interventions",
		},
	},
	{
		ID:      "grounding_techniques",
		Content: "Grounding techniques help manage anxiety, panic attacks, and dissociation by focusing attention on the present moment. The 5-4-3-2-1 technique involves identifying 5 things you can see, 4 things you can touch, 3 things you can hear, 2 things you can smell, and 1 thing you can taste. Physical grounding includes holding ice cubes, focusing on your breathing, or doing progressive muscle relaxation.",
		Metadata: Metadata{
			Title:    "Grounding Techniques for Anxiety",
			Category: "Coping Strategies",
			Tags:     []string{"grounding", "anxiety", "panic attacks", "mindfulness"},
			Source:   "Therapeutic Interventions",
		},
	},
	{
		ID:      "sleep_hygiene",
		Content: "Good sleep hygiene is essential for mental health. Maintain a consistent sleep schedule, create a relaxing bedtime routine, keep your bedroom cool and dark, avoid screens before bedtime, limit caffeine and alcohol, and avoid large meals before sleep. Poor sleep can worsen depression and anxiety symptoms.",
		Metadata: Metadata{
			Title:    "Sleep Hygiene for Mental Health",
			Category: "Self-Care",
			Tags:     []string{"sleep", "hygiene", "depression", "anxiety"},
			Source:   "Health Guidelines",
		},
	},
	{
		ID:      "cognitive_distortions",
		Content: "Cognitive distortions are negative thought patterns that contribute to depression and anxiety. Common types include all-or-nothing thinking, overgeneralization, mental filter, disqualifying the positive, jumping to conclusions, magnification, emotional reasoning, should statements, labeling, and personalization. Recognizing these patterns is the first step in challenging them.",
		Metadata: Metadata{
			Title:    "Common Cognitive Distortions",
			Category: "Cognitive Behavioral Therapy",
			Tags:     []string{"CBT", "cognitive distortions", "negative thinking"},
			Source:   "Therapeutic Techniques",
		},
	},
	{
		ID:      "mindfulness_meditation",
		Content: "Mindfulness meditation involves focusing attention on the present moment without judgment. Start with 5-10 minutes daily, find a quiet space, sit comfortably, focus on your breath, notice when your mind wanders and gently return attention to breathing. Regular practice can reduce anxiety, depression, and improve overall well-being.",
		Metadata: Metadata{
			Title:    "Mindfulness Meditation Basics",
			Category: "Mindfulness",
			Tags:     []string{"mindfulness", "meditation", "anxiety", "depression"},
			Source:   "Therapeutic Interventions",
		},
	},
	{
		ID:      "stress_management",
		Content: "Effective stress management involves identifying stressors, developing healthy coping strategies, maintaining work-life balance, exercising regularly, eating a healthy diet, getting adequate sleep, practicing relaxation techniques, and seeking social support. Chronic stress can contribute to various mental and physical health problems.",
		Metadata: Metadata{
			Title:    "Stress Management Strategies",
			Category: "Self-Care",
			Tags:     []string{"stress", "management", "coping", "health"},
			Source:   "Health Guidelines",
		},
	},
	{
		ID:      "self_compassion",
		Content: "Self-compassion involves treating yourself with kindness during difficult times, recognizing that suffering is part of human experience, and maintaining mindful awareness of your emotions without over-identification. Practice self-compassion by speaking to yourself as you would a good friend, acknowledging your humanity, and observing your thoughts and feelings without judgment.",
		Metadata: Metadata{
			Title:    "Practicing Self-Compassion",
			Category: "Self-Care",
			Tags:     []string{"self-compassion", "kindness", "mindfulness"},
			Source:   "Therapeutic Concepts",
		},
	},
	{
		ID:      "social_support",
		Content: "Social support is crucial for mental health recovery and maintenance. It includes emotional support (empathy, caring), instrumental support (practical help), informational support (advice, suggestions), and appraisal support (feedback, affirmation). Build social connections through community involvement, maintaining friendships, family relationships, and professional support when needed.",
		Metadata: Metadata{
			Title:    "The Importance of Social Support",
			Category: "Social Connection",
			Tags:     []string{"social support", "relationships", "community", "mental health"},
			Source:   "Research Findings",
		},
	},
}

// SeedKnowledgeBase loads the curated knowledge base into the index.
// Safe to call more than once: documents are keyed by ID and overwrite.
func (i *Index) SeedKnowledgeBase() {
	for _, doc := range knowledgeBase {
		i.AddDocument(doc)
	}
}
