package types

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Collection is a named, typed group of fields and items. It exclusively
// owns its Fields and Items; field order defines column order and item
// order is the canonical display order.
type Collection struct {
	Name      string    // Unique human-readable identifier; derives the file name.
	Type      string    // Free-form category label ("music", "books", ...).
	Fields    []Field   // Ordered field definitions.
	Items     []*Item   // Ordered items.
	CreatedAt time.Time // Timestamp of creation.
	UpdatedAt time.Time // Timestamp of last mutation; never before CreatedAt.
}

// New creates an empty collection with fresh timestamps.
// Returns ErrEmptyName if name is empty.
func New(name, collType string) (*Collection, error) {
	if name == "" {
		return nil, fmt.Errorf("collection: %w", ErrEmptyName)
	}
	if strings.ContainsAny(name, "\n\r") {
		return nil, fmt.Errorf("collection %q: %w: name must not contain newlines", name, ErrValidation)
	}
	now := time.Now()
	return &Collection{
		Name:      name,
		Type:      collType,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// NewItemID generates a UUIDv7 item identifier, falling back to UUIDv4 if
// the monotonic source fails.
func NewItemID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// Field returns the field definition with the given name.
func (c *Collection) Field(name string) (Field, bool) {
	for _, f := range c.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// FieldNames returns the field names in declared order.
func (c *Collection) FieldNames() []string {
	names := make([]string, len(c.Fields))
	for i, f := range c.Fields {
		names[i] = f.Name
	}
	return names
}

// Item returns the item with the given id.
func (c *Collection) Item(id string) (*Item, bool) {
	for _, it := range c.Items {
		if it.ID == id {
			return it, true
		}
	}
	return nil, false
}

// AddField appends a field definition. The field must be well-formed and
// its name unused. A required field cannot be added once the collection
// has items, because every existing item would instantly be invalid.
func (c *Collection) AddField(f Field) error {
	if err := f.Validate(); err != nil {
		return err
	}
	if _, exists := c.Field(f.Name); exists {
		return fmt.Errorf("field %q: %w", f.Name, ErrDuplicateField)
	}
	if f.Required && len(c.Items) > 0 {
		return fmt.Errorf("field %q: %w: cannot add a required field to a collection with items", f.Name, ErrValidation)
	}
	c.Fields = append(c.Fields, f)
	c.UpdatedAt = time.Now()
	return nil
}

// AddItem validates data against the declared fields and appends a new
// item with a fresh id and timestamps. On error nothing is modified.
func (c *Collection) AddItem(data map[string]Value) (*Item, error) {
	if err := c.checkData(data); err != nil {
		return nil, err
	}
	now := time.Now()
	it := &Item{
		ID:        NewItemID(),
		Data:      cloneData(data),
		CreatedAt: now,
		UpdatedAt: now,
	}
	c.Items = append(c.Items, it)
	c.UpdatedAt = now
	return it, nil
}

// UpdateItem replaces the data of the item with the given id. The new data
// is validated in full before anything is touched; on error the item keeps
// its previous data and timestamps.
func (c *Collection) UpdateItem(id string, data map[string]Value) error {
	it, ok := c.Item(id)
	if !ok {
		return fmt.Errorf("item %q: %w", id, ErrItemNotFound)
	}
	if err := c.checkData(data); err != nil {
		return err
	}
	now := time.Now()
	it.Data = cloneData(data)
	it.UpdatedAt = now
	c.UpdatedAt = now
	return nil
}

// RemoveItem deletes the item with the given id, preserving the order of
// the remaining items.
func (c *Collection) RemoveItem(id string) error {
	for i, it := range c.Items {
		if it.ID == id {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			c.UpdatedAt = time.Now()
			return nil
		}
	}
	return fmt.Errorf("item %q: %w", id, ErrItemNotFound)
}

// checkData validates a full item data map: every key must name a declared
// field, every value must satisfy its field, and every required field must
// have a non-empty value.
func (c *Collection) checkData(data map[string]Value) error {
	for name, v := range data {
		f, ok := c.Field(name)
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownField, name)
		}
		if v.IsZero() {
			return fmt.Errorf("field %q: %w: zero value", name, ErrValidation)
		}
		if err := f.Check(v); err != nil {
			return err
		}
	}
	for _, f := range c.Fields {
		if !f.Required {
			continue
		}
		v, ok := data[f.Name]
		if !ok {
			return fmt.Errorf("field %q: %w", f.Name, ErrMissingRequired)
		}
		if s, isText := v.Text(); isText && s == "" {
			return fmt.Errorf("field %q: %w", f.Name, ErrMissingRequired)
		}
	}
	return nil
}

// Validate checks the whole collection: name, field definitions, field
// name uniqueness, and every item's data.
func (c *Collection) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("collection: %w", ErrEmptyName)
	}
	if strings.ContainsAny(c.Name, "\n\r") {
		return fmt.Errorf("collection %q: %w: name must not contain newlines", c.Name, ErrValidation)
	}
	seen := make(map[string]bool, len(c.Fields))
	for _, f := range c.Fields {
		if err := f.Validate(); err != nil {
			return err
		}
		if seen[f.Name] {
			return fmt.Errorf("field %q: %w", f.Name, ErrDuplicateField)
		}
		seen[f.Name] = true
	}
	for i, it := range c.Items {
		if err := c.checkData(it.Data); err != nil {
			return fmt.Errorf("item %d: %w", i+1, err)
		}
	}
	return nil
}

// Equal reports whether two collections are semantically equal: same
// metadata, same fields in order, same items in order.
func (c *Collection) Equal(o *Collection) bool {
	if c.Name != o.Name || c.Type != o.Type {
		return false
	}
	if !c.CreatedAt.Equal(o.CreatedAt) || !c.UpdatedAt.Equal(o.UpdatedAt) {
		return false
	}
	if len(c.Fields) != len(o.Fields) || len(c.Items) != len(o.Items) {
		return false
	}
	for i := range c.Fields {
		if !c.Fields[i].Equal(o.Fields[i]) {
			return false
		}
	}
	for i := range c.Items {
		if !c.Items[i].Equal(o.Items[i]) {
			return false
		}
	}
	return true
}

// Summary is the lightweight listing view of a collection, built from the
// metadata block without parsing item bodies.
type Summary struct {
	Name      string
	Type      string
	ItemCount int
	UpdatedAt time.Time
}
