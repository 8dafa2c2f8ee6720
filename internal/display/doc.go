// Package display formats the CLI's own user-facing messages, such as the
// warning printed for an unknown badge preset.
//
//	warning := display.Warning{
//	    Title:      "Unknown preset \"sucess\"",
//	    Message:    "The default preset was used instead.",
//	    Items:      []string{"success", "suggestion"},
//	    ItemsLabel: "Did you mean",
//	}
//	warning.Display(os.Stderr, true)
//
// Colors come from fatih/color and are only written when the caller enables
// them. All functions accept io.Writer for testability.
package display
