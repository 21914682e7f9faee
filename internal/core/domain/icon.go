package domain

import "fmt"

// Icon is a reference into the closed glyph table below. Unknown references
// never reach the renderer: they are rejected at input or fall back to
// IconFallback.
type Icon string

const (
	IconCheckSquare     Icon = "CheckSquare"
	IconAlertCircle     Icon = "AlertCircle"
	IconHistory         Icon = "History"
	IconGraduationCap   Icon = "GraduationCap"
	IconMail            Icon = "Mail"
	IconFileText        Icon = "FileText"
	IconSettings        Icon = "Settings"
	IconBookOpen        Icon = "BookOpen"
	IconMessageSquare   Icon = "MessageSquare"
	IconUsers           Icon = "Users"
	IconBarChart        Icon = "BarChart3"
	IconCalendar        Icon = "Calendar"
	IconClipboard       Icon = "Clipboard"
	IconClock           Icon = "Clock"
	IconDatabase        Icon = "Database"
	IconFolderOpen      Icon = "FolderOpen"
	IconHome            Icon = "Home"
	IconLayout          Icon = "Layout"
	IconList            Icon = "List"
	IconPieChart        Icon = "PieChart"
	IconSparkles        Icon = "Sparkles"
	IconTarget          Icon = "Target"
	IconTrendingUp      Icon = "TrendingUp"
	IconZap             Icon = "Zap"
	IconBell            Icon = "Bell"
	IconFlag            Icon = "Flag"
	IconPackage         Icon = "Package"
	IconWrench          Icon = "Wrench"
	IconCheckCircle     Icon = "CheckCircle2"
	IconPalmtree        Icon = "Palmtree"
	IconWallet          Icon = "Wallet"
	IconLayoutDashboard Icon = "LayoutDashboard"
	IconFileBarChart    Icon = "FileBarChart"
	IconMegaphone       Icon = "Megaphone"
	IconUsersGroup      Icon = "Users2"
	IconClipboardList   Icon = "ClipboardList"
	IconReceipt         Icon = "Receipt"
	IconCalendarCheck   Icon = "CalendarCheck"
	IconCircle          Icon = "Circle"

	// IconFallback is rendered for any reference missing from the table.
	IconFallback = IconCircle
)

var glyphs = map[Icon]string{
	IconCheckSquare:     "check-square",
	IconAlertCircle:     "alert-circle",
	IconHistory:         "history",
	IconGraduationCap:   "graduation-cap",
	IconMail:            "mail",
	IconFileText:        "file-text",
	IconSettings:        "settings",
	IconBookOpen:        "book-open",
	IconMessageSquare:   "message-square",
	IconUsers:           "users",
	IconBarChart:        "bar-chart-3",
	IconCalendar:        "calendar",
	IconClipboard:       "clipboard",
	IconClock:           "clock",
	IconDatabase:        "database",
	IconFolderOpen:      "folder-open",
	IconHome:            "home",
	IconLayout:          "layout",
	IconList:            "list",
	IconPieChart:        "pie-chart",
	IconSparkles:        "sparkles",
	IconTarget:          "target",
	IconTrendingUp:      "trending-up",
	IconZap:             "zap",
	IconBell:            "bell",
	IconFlag:            "flag",
	IconPackage:         "package",
	IconWrench:          "wrench",
	IconCheckCircle:     "check-circle-2",
	IconPalmtree:        "palmtree",
	IconWallet:          "wallet",
	IconLayoutDashboard: "layout-dashboard",
	IconFileBarChart:    "file-bar-chart",
	IconMegaphone:       "megaphone",
	IconUsersGroup:      "users-2",
	IconClipboardList:   "clipboard-list",
	IconReceipt:         "receipt",
	IconCalendarCheck:   "calendar-check",
	IconCircle:          "circle",
}

// Valid reports whether i is in the glyph table.
func (i Icon) Valid() bool {
	_, ok := glyphs[i]
	return ok
}

// Glyph returns the renderer name for i, or the fallback glyph.
func (i Icon) Glyph() string {
	if g, ok := glyphs[i]; ok {
		return g
	}
	return glyphs[IconFallback]
}

// ParseIcon resolves a free-form reference. The empty string maps to the
// fallback icon.
func ParseIcon(s string) (Icon, error) {
	if s == "" {
		return IconFallback, nil
	}
	i := Icon(s)
	if !i.Valid() {
		return "", NewValidationError("icon", fmt.Sprintf("references unknown icon %q", s))
	}
	return i, nil
}
