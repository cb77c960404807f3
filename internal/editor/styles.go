package editor

import "github.com/gerunddev/inkwell/internal/styles"

var (
	titleStyle = styles.TitleStyle
	dimStyle   = styles.DimStyle
	helpStyle  = styles.HelpStyle
	dirtyStyle = styles.DirtyStyle
	tableStyle = styles.TableStyle
	pane       = styles.PaneStyle
	activePane = styles.ActivePaneStyle
)
