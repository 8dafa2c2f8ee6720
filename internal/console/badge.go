package console

import (
	"fmt"

	"github.com/harrison/consolefmt/internal/format"
	"github.com/harrison/consolefmt/internal/preset"
)

// badgeLevels routes contextual badges to a channel. Anything missing goes
// to LevelLog.
var badgeLevels = map[string]Level{
	"debug":     LevelDebug,
	"error":     LevelError,
	"blame":     LevelError,
	"alert":     LevelError,
	"warn":      LevelWarn,
	"userError": LevelWarn,
	"info":      LevelInfo,
}

// BadgeLevel returns the channel a badge preset is written to.
func BadgeLevel(name string) Level {
	if level, ok := badgeLevels[name]; ok {
		return level
	}
	return LevelLog
}

// GetBadge renders label as a styled badge followed by message.
func (c *Console) GetBadge(label, message, style string) format.Output {
	return c.Styled([]string{label}, []string{style}, format.WithPostText(message))
}

// Badge prints a badge using a named preset, or the default preset when
// color is empty.
func (c *Console) Badge(label, message, color string) {
	if color == "" {
		color = preset.Default
	}
	c.Emit(LevelLog, c.GetBadge(label, message, c.presets.BadgeStyle(color)))
}

// BadgeAs prints a badge with the named preset on the channel the preset
// belongs to.
func (c *Console) BadgeAs(name, label, message string) {
	c.Emit(BadgeLevel(name), c.GetBadge(label, message, c.presets.BadgeStyle(name)))
}

// BadgeDebug is for troubleshooting output.
func (c *Console) BadgeDebug(label, message string) { c.BadgeAs("debug", label, message) }

// BadgeError records exceptions and interruptions.
func (c *Console) BadgeError(label, message string) { c.BadgeAs("error", label, message) }

// BadgeBlame labels the source of a bug.
func (c *Console) BadgeBlame(label, message string) { c.BadgeAs("blame", label, message) }

// BadgeAlert flags a possible problem that needs more input before continuing.
func (c *Console) BadgeAlert(label, message string) { c.BadgeAs("alert", label, message) }

// BadgeWarn notes a problem that was worked around; results may be off.
func (c *Console) BadgeWarn(label, message string) { c.BadgeAs("warn", label, message) }

// BadgeSuccess marks success or true.
func (c *Console) BadgeSuccess(label, message string) { c.BadgeAs("success", label, message) }

// BadgeFail marks failure or false.
func (c *Console) BadgeFail(label, message string) { c.BadgeAs("fail", label, message) }

// BadgeMistake marks nonsense.
func (c *Console) BadgeMistake(label, message string) { c.BadgeAs("mistake", label, message) }

// BadgeUserError reports incorrect use by the caller.
func (c *Console) BadgeUserError(label, message string) { c.BadgeAs("userError", label, message) }

// BadgeInconclusive reports a check that could not be validated.
func (c *Console) BadgeInconclusive(label, message string) {
	c.BadgeAs("inconclusive", label, message)
}

// BadgeUndefined reports an undefined value.
func (c *Console) BadgeUndefined(label, message string) { c.BadgeAs("undefined", label, message) }

// BadgeEmpty reports a nil, empty or zero value.
func (c *Console) BadgeEmpty(label, message string) { c.BadgeAs("empty", label, message) }

// BadgeInfo describes a local detail.
func (c *Console) BadgeInfo(label, message string) { c.BadgeAs("info", label, message) }

// BadgeNote adds tangential information.
func (c *Console) BadgeNote(label, message string) { c.BadgeAs("note", label, message) }

// BadgeSuggestion gives advice to the reader.
func (c *Console) BadgeSuggestion(label, message string) { c.BadgeAs("suggestion", label, message) }

// BadgeTodo is a reminder of unfinished work.
func (c *Console) BadgeTodo(label, message string) { c.BadgeAs("todo", label, message) }

// BadgeCustom prints a badge with a caller-supplied style.
func (c *Console) BadgeCustom(label, message, style string) {
	c.Emit(LevelLog, c.GetBadge(label, message, style))
}

// BadgeCustomQuick prints a badge with the given foreground and background
// colors on top of the blank badge shape. extraCSS is appended when non-empty.
func (c *Console) BadgeCustomQuick(label, message, fg, bg, extraCSS string) {
	style := fmt.Sprintf("color: %s; background-color: %s; %s", fg, bg, c.presets.BadgeStyle(preset.Blank))
	if extraCSS != "" {
		style += "; " + extraCSS
	}
	c.BadgeCustom(label, message, style)
}
