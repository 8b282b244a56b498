package domain

// Link is a single directory entry shown to authenticated users.
// Description, Icon and Group are optional free text; Group drives display
// grouping in clients and is otherwise uninterpreted.
type Link struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Icon        string `json:"icon"`
	Group       string `json:"group"`
}
