package ui

// HelpLines 帮助面板的静态文字 (每行不超过 60 个字，面板宽度按这个算)
var HelpLines = []string{
	"Mouse Position Tracker - Help",
	"",
	"Real-time tracking of the mouse cursor's position, the",
	"pixel color under it, and a magnified view of the area",
	"around the cursor.",
	"",
	"Features:",
	"- Mouse Location: current X and Y coordinates.",
	"- Pixel Color: color under the cursor in DEC and HEX.",
	"- Magnification: magnified view with a bullseye in the",
	"  center, drawn in the complementary color.",
	"- CPU/Memory Tracking: CPU and memory usage of this",
	"  program, refreshed every 10 seconds.",
	"",
	"Controls:",
	"- Pause/Resume button: stops and resumes tracking.",
	"  Shortcut: Ctrl-S.",
	"- Help button: opens this panel. Shortcut: F1.",
	"- Settings button: enable or disable features.",
	"- Ctrl-C: copy the HEX color to the clipboard.",
	"- Esc: close the last opened panel, or quit.",
	"",
	"Settings Options:",
	"- Enable CPU/Memory Tracking",
	"- Enable Magnification",
	"- Enable Hex Color",
	"- Enable Dec Color",
}
