package dto

// MemberRequest creates or renames a member.
type MemberRequest struct {
	Name string `json:"name" binding:"required,max=120"`
}

// CategoryRequest creates or renames a category.
type CategoryRequest struct {
	Name string `json:"name" binding:"required,max=80"`
}

// CategoriesResponse is the ordered category list after a change.
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}
