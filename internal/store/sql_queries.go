package store

const (
	itemsTable = "items"

	findDuplicateItem = `
		SELECT id
		FROM items
		WHERE sha256 = ? AND kind = ? AND IFNULL(file_path, '') = IFNULL(?, '')
		ORDER BY id DESC
		LIMIT 1;`

	getRawItem = `
		SELECT kind, content_blob, preview_blob, rtf_blob, file_path
		FROM items
		WHERE id = ?;`

	pinItem = `UPDATE items SET is_pinned = ? WHERE id = ?;`

	deleteItem = `DELETE FROM items WHERE id = ?;`

	deleteAllItems = `DELETE FROM items;`
)

var itemMetadataColumns = []string{
	"id", "created_at", "kind", "size", "sha256", "file_path", "is_pinned",
}

var itemInsertColumns = []string{
	"created_at", "kind", "size", "sha256", "file_path", "is_pinned",
	"content_blob", "preview_blob", "rtf_blob",
}
