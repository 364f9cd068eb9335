package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconVersion   = "\uf02b" // tag
	IconGitBranch = "\ue725" // git branch
	IconCalendar  = "\uf073" // calendar
	IconGithub    = "\uf09b" // github
	IconGo        = "\ue627" // go gopher
	IconInfo      = "\uf05a" // info
	IconX         = "\uf00d" // x
	IconCheck     = "\uf00c" // check
	IconConfig    = "\ue615" // config
	IconFolder    = "\uf07b" // folder
	IconTerminal  = "\uf120" // terminal
	IconFile      = "\uf15b" // file
	IconPane      = "\uf0db" // columns
	IconTab       = "\uf0ce" // table
)
