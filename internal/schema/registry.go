package schema

import "fmt"

// Operation schema names.
const (
	ScriptPackage      = "script_package"
	PartialScript      = "partial_script"
	Analysis           = "analysis"
	Hooks              = "hooks"
	Simulation         = "simulation"
	DirectorPlan       = "director_plan"
	Citations          = "citations"
	ExperimentVariants = "experiment_variants"
	ViralTitles        = "viral_titles"
	TopicSuggestions   = "topic_suggestions"
	EnhancementLog     = "enhancement_log"
)

// CitationTypes is the closed enum domain for citation source categories.
var CitationTypes = []string{"News", "Research", "Report", "Public Data", "Official"}

// ReliabilityScores is the closed enum domain for source reliability.
var ReliabilityScores = []string{"High", "Medium", "Low"}

func segmentSchema() *Schema {
	return obj(map[string]*Schema{
		"visual":            str(),
		"audio":             str(),
		"isWeak":            boolean(),
		"rewriteSuggestion": str(),
	}, "visual", "audio")
}

func citationSchema() *Schema {
	return obj(map[string]*Schema{
		"id":               str(),
		"type":             strEnum(CitationTypes...),
		"sourceName":       str(),
		"context":          str(),
		"reliabilityScore": strEnum(ReliabilityScores...),
		"isVerified":       boolean(),
		"url":              str(),
	}, "type", "sourceName", "context")
}

var registry = map[string]*Schema{
	ScriptPackage: obj(map[string]*Schema{
		"title":          str(),
		"detectedIntent": str(),
		"targetAudience": str(),
		"segments":       arr(segmentSchema()),
		"ctas":           arr(str()),
		"citations":      arr(citationSchema()),
		"autoCreatorSelection": obj(map[string]*Schema{
			"selectedId":   str(),
			"reason":       str(),
			"alternatives": arr(str()),
		}),
		"blendMetadata": obj(map[string]*Schema{
			"primaryCreator":    str(),
			"secondaryCreators": arr(str()),
			"blendRatio":        str(),
		}),
	}, "title", "segments"),

	PartialScript: obj(map[string]*Schema{
		"segments": arr(segmentSchema()),
	}, "segments"),

	Analysis: obj(map[string]*Schema{
		"hookScore":     num(),
		"viralityLabel": strEnum("Low", "Medium", "Viral"),
		"retentionData": arr(obj(map[string]*Schema{
			"time":      str(),
			"retention": num(),
		})),
		"suggestions":       arr(str()),
		"dropOffPrediction": str(),
		"truthScore":        num(),
		"monetizationRisks": arr(str()),
		"safetyFlags": arr(obj(map[string]*Schema{
			"severity": strEnum("low", "medium", "high"),
			"reason":   str(),
		})),
	}, "hookScore", "viralityLabel"),

	Hooks: obj(map[string]*Schema{
		"hooks": arr(obj(map[string]*Schema{
			"id":        str(),
			"type":      strEnum("Mystery", "Controversy", "Relatable Story"),
			"visual":    str(),
			"audio":     str(),
			"score":     num(),
			"reasoning": str(),
		})),
	}, "hooks"),

	Simulation: obj(map[string]*Schema{
		"retentionHeatmap": arr(obj(map[string]*Schema{
			"second":  num(),
			"score":   num(),
			"comment": str(),
		})),
		"personas": arr(obj(map[string]*Schema{
			"id":               str(),
			"demographic":      str(),
			"reaction":         str(),
			"dropPointTime":    str(),
			"emotionalTrigger": str(),
		})),
		"microFixes": arr(obj(map[string]*Schema{
			"original": str(),
			"fix":      str(),
			"impact":   str(),
		})),
		"predictedRetention": num(),
	}),

	DirectorPlan: obj(map[string]*Schema{
		"scenes": arr(obj(map[string]*Schema{
			"id":              str(),
			"timeStart":       str(),
			"duration":        str(),
			"cameraDirection": str(),
			"audioCue":        str(),
			"visualPrompt":    str(),
			"onScreenText":    str(),
		})),
		"editingNotes": str(),
		"musicMood":    str(),
	}),

	Citations: obj(map[string]*Schema{
		"citations": arr(citationSchema()),
	}, "citations"),

	ExperimentVariants: obj(map[string]*Schema{
		"variants": arr(obj(map[string]*Schema{
			"id":              str(),
			"type":            strEnum("Hook A/B", "Tone Shift", "Length"),
			"predictedWinner": boolean(),
			"confidence":      num(),
			"reason":          str(),
		})),
	}, "variants"),

	ViralTitles: obj(map[string]*Schema{
		"titles": arr(obj(map[string]*Schema{
			"text":      str(),
			"ctrScore":  num(),
			"pattern":   strEnum("Explanation", "Investigation", "Curiosity", "Shock", "List"),
			"reasoning": str(),
		})),
	}, "titles"),

	TopicSuggestions: obj(map[string]*Schema{
		"suggestions": arr(obj(map[string]*Schema{
			"refinedTopic": str(),
			"reason":       str(),
			"type":         strEnum("Angle", "Clarity", "Depth"),
		})),
	}, "suggestions"),

	EnhancementLog: obj(map[string]*Schema{
		"improvedFields": arr(str()),
		"summary":        str(),
	}, "summary"),
}

// Lookup returns the output contract for the named operation. It panics on
// an unknown name: schema names are compile-time constants, so a miss is a
// programming error, not a runtime condition.
func Lookup(name string) *Schema {
	s, ok := registry[name]
	if !ok {
		panic(fmt.Sprintf("schema: unknown operation %q", name))
	}
	return s
}
