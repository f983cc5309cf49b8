package cards

import (
	"strconv"
	"strings"
)

// --- Color Tags ---

// ColorTag names a semantic color; the UI maps tags to terminal colors.
type ColorTag string

const (
	ColorPrimary   ColorTag = "primary"
	ColorSecondary ColorTag = "secondary"
	ColorSuccess   ColorTag = "success"
	ColorWarning   ColorTag = "warning"
	ColorInfo      ColorTag = "info"
	ColorDanger    ColorTag = "danger"
)

// --- Card Types ---

// CardType is the closed category set a card belongs to.
type CardType string

const (
	TypeEducation CardType = "education"
	TypeReminder  CardType = "reminder"
	TypeExercise  CardType = "exercise"
	TypeFun       CardType = "fun"
)

// TypeInfo is the display metadata for a card type.
type TypeInfo struct {
	Value    CardType
	LabelKey string
	Color    ColorTag
	Icon     string
}

var cardTypes = []TypeInfo{
	{Value: TypeEducation, LabelKey: "type.education", Color: ColorPrimary, Icon: "📚"},
	{Value: TypeReminder, LabelKey: "type.reminder", Color: ColorWarning, Icon: "⏰"},
	{Value: TypeExercise, LabelKey: "type.exercise", Color: ColorSuccess, Icon: "💪"},
	{Value: TypeFun, LabelKey: "type.fun", Color: ColorInfo, Icon: "🎉"},
}

// CardTypes returns the type catalog in selector order.
func CardTypes() []TypeInfo {
	return append([]TypeInfo(nil), cardTypes...)
}

// LookupType finds the catalog entry for a raw type value.
func LookupType(value string) (TypeInfo, bool) {
	for _, t := range cardTypes {
		if string(t.Value) == value {
			return t, true
		}
	}
	return TypeInfo{}, false
}

// --- Priorities ---

const (
	MinPriority = 1
	MaxPriority = 5
)

// PriorityInfo is the display metadata for a priority level.
type PriorityInfo struct {
	Value    int
	LabelKey string
	Color    ColorTag
}

var priorities = []PriorityInfo{
	{Value: 1, LabelKey: "priority.1", Color: ColorSecondary},
	{Value: 2, LabelKey: "priority.2", Color: ColorInfo},
	{Value: 3, LabelKey: "priority.3", Color: ColorPrimary},
	{Value: 4, LabelKey: "priority.4", Color: ColorWarning},
	{Value: 5, LabelKey: "priority.5", Color: ColorDanger},
}

// Priorities returns the priority catalog in ascending order.
func Priorities() []PriorityInfo {
	return append([]PriorityInfo(nil), priorities...)
}

// LookupPriority finds the catalog entry for a numeric priority.
func LookupPriority(value int) (PriorityInfo, bool) {
	if value < MinPriority || value > MaxPriority {
		return PriorityInfo{}, false
	}
	return priorities[value-1], true
}

// ParsePriority converts selector text to a priority in [1,5].
func ParsePriority(raw string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, false
	}
	if _, ok := LookupPriority(n); !ok {
		return 0, false
	}
	return n, true
}

// Stars renders a priority as a repeated glyph.
func Stars(priority int) string {
	if priority <= 0 {
		return ""
	}
	return strings.Repeat("⭐", priority)
}
