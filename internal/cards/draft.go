package cards

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrUnknownField is returned by UpdateField for names the draft does not own.
var ErrUnknownField = errors.New("unknown draft field")

// Draft field names accepted by UpdateField.
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldType        = "type"
	FieldPriority    = "priority"
	FieldTagInput    = "tagInput"
)

// Draft is the in-progress form state. Type and Priority stay raw strings
// so an unset selector is representable as "".
type Draft struct {
	Title       string
	Description string
	Type        string
	Priority    string
	Tags        []string
	TagInput    string
}

// UpdateField sets a named field. No validation happens on write.
func (d *Draft) UpdateField(name, value string) error {
	switch name {
	case FieldTitle:
		d.Title = value
	case FieldDescription:
		d.Description = value
	case FieldType:
		d.Type = value
	case FieldPriority:
		d.Priority = value
	case FieldTagInput:
		d.TagInput = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	return nil
}

// CanAddTag reports whether AddTag(text) would append a tag.
func (d *Draft) CanAddTag(text string) bool {
	tag := strings.TrimSpace(text)
	if tag == "" || len(d.Tags) >= MaxTags {
		return false
	}
	return !d.HasTag(tag)
}

// AddTag appends the trimmed text and clears the pending input.
// Blank, duplicate and over-capacity tags are ignored.
func (d *Draft) AddTag(text string) bool {
	if !d.CanAddTag(text) {
		return false
	}
	d.Tags = append(d.Tags, strings.TrimSpace(text))
	d.TagInput = ""
	return true
}

// RemoveTag drops the matching tag.
func (d *Draft) RemoveTag(text string) bool {
	for i, t := range d.Tags {
		if t == text {
			d.Tags = append(d.Tags[:i:i], d.Tags[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveLastTag drops the most recently added tag.
func (d *Draft) RemoveLastTag() (string, bool) {
	if len(d.Tags) == 0 {
		return "", false
	}
	last := d.Tags[len(d.Tags)-1]
	d.Tags = d.Tags[:len(d.Tags)-1]
	return last, true
}

// HasTag reports exact membership.
func (d *Draft) HasTag(tag string) bool {
	for _, t := range d.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// TagsRemaining is the free tag capacity.
func (d *Draft) TagsRemaining() int {
	return MaxTags - len(d.Tags)
}

// IsValid reports whether the draft can become a card.
func (d *Draft) IsValid() bool {
	return len(d.Missing()) == 0
}

// Missing lists the required fields that are still incomplete.
func (d *Draft) Missing() []string {
	var missing []string
	if strings.TrimSpace(d.Title) == "" {
		missing = append(missing, FieldTitle)
	}
	if strings.TrimSpace(d.Description) == "" {
		missing = append(missing, FieldDescription)
	}
	if _, ok := LookupType(d.Type); !ok {
		missing = append(missing, FieldType)
	}
	if _, ok := ParsePriority(d.Priority); !ok {
		missing = append(missing, FieldPriority)
	}
	return missing
}

// TypeInfo looks up the selected type. Recomputed on every call.
func (d *Draft) TypeInfo() (TypeInfo, bool) {
	return LookupType(d.Type)
}

// PriorityInfo looks up the selected priority. Recomputed on every call.
func (d *Draft) PriorityInfo() (PriorityInfo, bool) {
	p, ok := ParsePriority(d.Priority)
	if !ok {
		return PriorityInfo{}, false
	}
	return LookupPriority(p)
}

// Reset clears the draft back to its empty default.
func (d *Draft) Reset() {
	*d = Draft{}
}

func (d *Draft) toCard(id string, now time.Time) Card {
	p, _ := ParsePriority(d.Priority)
	return Card{
		ID:          id,
		Title:       strings.TrimSpace(d.Title),
		Description: strings.TrimSpace(d.Description),
		Type:        CardType(d.Type),
		Priority:    p,
		Tags:        append([]string{}, d.Tags...),
		CreatedAt:   now,
	}
}
