package script

// Citation ties a factual claim in the script to its source. Type and
// ReliabilityScore are closed enums enforced by the response schema.
type Citation struct {
	ID               string `json:"id,omitempty"`
	Type             string `json:"type"`
	SourceName       string `json:"sourceName"`
	Context          string `json:"context"`
	ReliabilityScore string `json:"reliabilityScore,omitempty"`
	IsVerified       bool   `json:"isVerified,omitempty"`
	URL              string `json:"url,omitempty"`
}

// RetentionPoint is one sample of the predicted audience-retention curve.
type RetentionPoint struct {
	Time      string  `json:"time"`
	Retention float64 `json:"retention"`
}

// SafetyFlag marks content that risks demonetization or policy strikes.
type SafetyFlag struct {
	Severity string `json:"severity"`
	Reason   string `json:"reason"`
}

// Analysis is the performance read on a finished script.
type Analysis struct {
	HookScore         float64          `json:"hookScore"`
	ViralityLabel     string           `json:"viralityLabel"`
	RetentionData     []RetentionPoint `json:"retentionData"`
	Suggestions       []string         `json:"suggestions"`
	DropOffPrediction string           `json:"dropOffPrediction,omitempty"`
	TruthScore        float64          `json:"truthScore,omitempty"`
	MonetizationRisks []string         `json:"monetizationRisks,omitempty"`
	SafetyFlags       []SafetyFlag     `json:"safetyFlags,omitempty"`
}

// HookOption is one alternative opening for the script's first seconds.
type HookOption struct {
	ID        string  `json:"id"`
	Type      string  `json:"type"`
	Visual    string  `json:"visual"`
	Audio     string  `json:"audio"`
	Score     float64 `json:"score"`
	Reasoning string  `json:"reasoning"`
}

// HeatmapPoint is one second of the simulated watch session.
type HeatmapPoint struct {
	Second  float64 `json:"second"`
	Score   float64 `json:"score"`
	Comment string  `json:"comment,omitempty"`
}

// ViewerReaction is one synthetic audience member's response.
type ViewerReaction struct {
	ID               string `json:"id"`
	Demographic      string `json:"demographic"`
	Reaction         string `json:"reaction"`
	DropPointTime    string `json:"dropPointTime,omitempty"`
	EmotionalTrigger string `json:"emotionalTrigger,omitempty"`
}

// MicroFix is a small line-level edit with predicted impact.
type MicroFix struct {
	Original string `json:"original"`
	Fix      string `json:"fix"`
	Impact   string `json:"impact"`
}

// SimulationResult is the full synthetic test screening.
type SimulationResult struct {
	RetentionHeatmap   []HeatmapPoint   `json:"retentionHeatmap"`
	Personas           []ViewerReaction `json:"personas"`
	MicroFixes         []MicroFix       `json:"microFixes"`
	PredictedRetention float64          `json:"predictedRetention"`
}

// Scene is one shot of the director plan.
type Scene struct {
	ID              string `json:"id"`
	TimeStart       string `json:"timeStart"`
	Duration        string `json:"duration"`
	CameraDirection string `json:"cameraDirection"`
	AudioCue        string `json:"audioCue"`
	VisualPrompt    string `json:"visualPrompt"`
	OnScreenText    string `json:"onScreenText,omitempty"`
}

// DirectorPlan is the shot-by-shot production breakdown of a script.
type DirectorPlan struct {
	Scenes       []Scene `json:"scenes"`
	EditingNotes string  `json:"editingNotes,omitempty"`
	MusicMood    string  `json:"musicMood,omitempty"`
}

// ExperimentVariant is one A/B test proposal for the script.
type ExperimentVariant struct {
	ID              string  `json:"id"`
	Type            string  `json:"type"`
	PredictedWinner bool    `json:"predictedWinner"`
	Confidence      float64 `json:"confidence"`
	Reason          string  `json:"reason"`
}

// Title is one title candidate with a predicted click-through score.
type Title struct {
	Text      string  `json:"text"`
	CTRScore  float64 `json:"ctrScore"`
	Pattern   string  `json:"pattern"`
	Reasoning string  `json:"reasoning"`
}

// TopicSuggestion is one refined angle on a raw topic idea.
type TopicSuggestion struct {
	RefinedTopic string `json:"refinedTopic"`
	Reason       string `json:"reason"`
	Type         string `json:"type"`
}

// EnhancementLog records what the enhancement pass changed.
type EnhancementLog struct {
	ImprovedFields []string `json:"improvedFields"`
	Summary        string   `json:"summary"`
}

// AutoSelection records which persona the model chose in auto mode and why.
type AutoSelection struct {
	SelectedID   string   `json:"selectedId"`
	Reason       string   `json:"reason"`
	Alternatives []string `json:"alternatives,omitempty"`
}

// BlendMetadata records the composition of a blended-voice script.
type BlendMetadata struct {
	PrimaryCreator    string   `json:"primaryCreator"`
	SecondaryCreators []string `json:"secondaryCreators"`
	BlendRatio        string   `json:"blendRatio"`
}
