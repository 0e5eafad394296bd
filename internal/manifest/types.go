package manifest

// FileName is the manifest file expected at the root of a plugin repository.
const FileName = "manifest.json"

// Manifest holds the identifying fields of a plugin manifest. Other fields in
// the document are accepted but not read.
type Manifest struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
