package sqltemplate

import "github.com/kisielk/sqlstruct"

// The init function sets the struct field tag that Columns reads column
// names from to "db".
func init() {
	sqlstruct.TagName = "db"
}
