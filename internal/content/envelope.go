package content

import (
	"fmt"
	"time"
)

// TimestampLayout is the ISO-8601 layout used for generated_at.
const TimestampLayout = "2006-01-02T15:04:05.000000Z07:00"

// Envelope is the uniform wrapper around generated content, used for both
// display and persistence.
type Envelope struct {
	Type        Type
	Metadata    *Map
	GeneratedAt time.Time
	PayloadKey  string
	Payload     Node
	Note        string
}

// PayloadKeyFor returns the envelope key that holds the payload of t.
func PayloadKeyFor(t Type) string {
	switch t {
	case TypeMCQ:
		return "questions"
	case TypeLessonPlan:
		return "lesson_plan"
	default:
		return "payload"
	}
}

// Tree returns the envelope as its canonical ordered mapping:
// content_type, metadata keys, generated_at, payload, then note if set.
func (e *Envelope) Tree() *Map {
	m := NewMap().Set("content_type", String(string(e.Type)))
	for _, k := range e.Metadata.Keys() {
		v, _ := e.Metadata.Get(k)
		m.Set(k, v)
	}
	m.Set("generated_at", String(e.GeneratedAt.Format(TimestampLayout)))

	key := e.PayloadKey
	if key == "" {
		key = PayloadKeyFor(e.Type)
	}
	var payload Node = Null()
	if e.Payload != nil {
		payload = e.Payload
	}
	m.Set(key, payload)

	if e.Note != "" {
		m.Set("note", String(e.Note))
	}
	return m
}

func (e *Envelope) MarshalJSON() ([]byte, error) {
	return e.Tree().MarshalJSON()
}

// ParseEnvelope is the inverse of Envelope.Tree for JSON input.
func ParseEnvelope(data []byte) (*Envelope, error) {
	n, err := Decode(data)
	if err != nil {
		return nil, err
	}
	m, ok := n.(*Map)
	if !ok {
		return nil, fmt.Errorf("envelope: expected object, got %T", n)
	}

	ct, ok := m.GetString("content_type")
	if !ok {
		return nil, fmt.Errorf("envelope: missing content_type")
	}
	stamp, ok := m.GetString("generated_at")
	if !ok {
		return nil, fmt.Errorf("envelope: missing generated_at")
	}
	at, err := time.Parse(TimestampLayout, stamp)
	if err != nil {
		return nil, fmt.Errorf("envelope: generated_at: %w", err)
	}

	env := &Envelope{
		Type:        Type(ct),
		Metadata:    NewMap(),
		GeneratedAt: at,
		PayloadKey:  PayloadKeyFor(Type(ct)),
	}
	env.Note, _ = m.GetString("note")

	for _, k := range m.Keys() {
		v, _ := m.Get(k)
		switch k {
		case "content_type", "generated_at", "note":
		case env.PayloadKey:
			env.Payload = v
		default:
			env.Metadata.Set(k, v)
		}
	}
	return env, nil
}
