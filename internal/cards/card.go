package cards

import "time"

// MaxTags caps the number of tags on a single card.
const MaxTags = 7

// Card is a submitted flashcard. Cards never change after creation.
type Card struct {
	ID          string    `json:"id" yaml:"id"`
	Title       string    `json:"title" yaml:"title"`
	Description string    `json:"description" yaml:"description"`
	Type        CardType  `json:"type" yaml:"type"`
	Priority    int       `json:"priority" yaml:"priority"`
	Tags        []string  `json:"tags" yaml:"tags"`
	CreatedAt   time.Time `json:"created_at" yaml:"created_at"`
}

// TypeInfo returns the catalog entry for the card type.
func (c Card) TypeInfo() TypeInfo {
	info, _ := LookupType(string(c.Type))
	return info
}

// PriorityInfo returns the catalog entry for the card priority.
func (c Card) PriorityInfo() PriorityInfo {
	info, _ := LookupPriority(c.Priority)
	return info
}
