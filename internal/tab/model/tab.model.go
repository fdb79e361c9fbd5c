package model

// Tab is the persisted note node. Tabs form a forest through ParentID;
// the reference is not enforced, a dangling parent is allowed.
type Tab struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Content   string  `json:"content"`
	ParentID  *string `json:"parent_id"`
	CreatedAt int64   `json:"created_at"`
}

// SaveTabRequest mirrors Tab with pointer fields so the handler can tell a
// missing field from a zero value. Only parent_id is optional.
type SaveTabRequest struct {
	ID        *string `json:"id"`
	Title     *string `json:"title"`
	Content   *string `json:"content"`
	ParentID  *string `json:"parent_id"`
	CreatedAt *int64  `json:"created_at"`
}

// Complete reports whether every required field was present in the body.
func (r SaveTabRequest) Complete() bool {
	return r.ID != nil && r.Title != nil && r.Content != nil && r.CreatedAt != nil
}

// Tab converts a complete request into the entity.
func (r SaveTabRequest) Tab() Tab {
	return Tab{
		ID:        *r.ID,
		Title:     *r.Title,
		Content:   *r.Content,
		ParentID:  r.ParentID,
		CreatedAt: *r.CreatedAt,
	}
}
