package styles

import "github.com/charmbracelet/lipgloss"

// Color palette - default dark theme
var (
	Primary = lipgloss.Color("#7C3AED") // Purple
	Accent  = lipgloss.Color("#F59E0B") // Amber

	Success = lipgloss.Color("#10B981") // Green
	Error   = lipgloss.Color("#EF4444") // Red

	TextPrimary   = lipgloss.Color("#F9FAFB")
	TextSecondary = lipgloss.Color("#9CA3AF")
	TextMuted     = lipgloss.Color("#6B7280")

	BgSecondary = lipgloss.Color("#1F2937")
	BgTertiary  = lipgloss.Color("#374151")

	BorderNormal = lipgloss.Color("#374151")
	BorderActive = lipgloss.Color("#7C3AED")
)

// Panel styles
var (
	// Active panel with highlighted border
	PanelActive = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderActive).
			Padding(0, 1)

	// Inactive panel with subtle border
	PanelInactive = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderNormal).
			Padding(0, 1)
)

// Text styles
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextPrimary)

	Body = lipgloss.NewStyle().
		Foreground(TextPrimary)

	Muted = lipgloss.NewStyle().
		Foreground(TextMuted)

	KeyHint = lipgloss.NewStyle().
		Foreground(TextMuted).
		Background(BgTertiary).
		Padding(0, 1)
)

// List item styles
var (
	ListItemNormal = lipgloss.NewStyle().
			Foreground(TextPrimary)

	ListItemSelected = lipgloss.NewStyle().
				Foreground(TextPrimary).
				Background(BgTertiary)

	ListCursor = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	PinMarker = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)
)

// Bar element styles (shared by header/footer)
var (
	BarTitle = lipgloss.NewStyle().
			Foreground(TextPrimary).
			Bold(true)

	BarText = lipgloss.NewStyle().
		Foreground(TextMuted)

	BarChip = lipgloss.NewStyle().
		Foreground(TextMuted).
		Background(BgTertiary).
		Padding(0, 1)

	BarChipActive = lipgloss.NewStyle().
			Foreground(TextPrimary).
			Background(Primary).
			Padding(0, 1).
			Bold(true)
)

// Toast styles for status messages
var (
	ToastSuccess = lipgloss.NewStyle().
			Background(Success).
			Foreground(lipgloss.Color("#000000")).
			Bold(true).
			Padding(0, 1)

	ToastError = lipgloss.NewStyle().
			Background(Error).
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true).
			Padding(0, 1)
)

// Footer and header
var (
	Footer = lipgloss.NewStyle().
		Foreground(TextMuted).
		Background(BgSecondary)

	Header = lipgloss.NewStyle().
		Background(BgSecondary)
)

// noteColors maps note color tokens to terminal colors.
var noteColors = map[string]lipgloss.Color{
	"red":    lipgloss.Color("#EF4444"),
	"orange": lipgloss.Color("#F97316"),
	"yellow": lipgloss.Color("#EAB308"),
	"green":  lipgloss.Color("#10B981"),
	"blue":   lipgloss.Color("#3B82F6"),
	"purple": lipgloss.Color("#8B5CF6"),
	"gray":   lipgloss.Color("#6B7280"),
}

// NoteColorOrder is the cycling order used by the color-tag key.
var NoteColorOrder = []string{"red", "orange", "yellow", "green", "blue", "purple", "gray"}

// NoteColor resolves a color token. ok is false for unknown tokens.
func NoteColor(token string) (lipgloss.Color, bool) {
	c, ok := noteColors[token]
	return c, ok
}
