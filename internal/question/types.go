package question

// Bank is the practice question bank schema loaded from JSON or YAML.
type Bank struct {
	Version   int        `json:"version" yaml:"version"`
	Questions []Question `json:"questions" yaml:"questions"`
}

// Question is one interview question with an optional reference answer.
type Question struct {
	ID          string `json:"id" yaml:"id"`
	Prompt      string `json:"question" yaml:"question"`
	IdealAnswer string `json:"ideal_answer" yaml:"ideal_answer"`
}
