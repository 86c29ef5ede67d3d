package tui

// confirmModel is a yes/no dialog drawn over the current page.
type confirmModel struct {
	title    string
	message  string
	yesLabel string
	noLabel  string
}

func newRemoveTestDialog() confirmModel {
	return confirmModel{
		title:    "Remove test?",
		message:  "The test will be removed from this device. You will no\nlonger receive its result here.",
		yesLabel: "remove",
		noLabel:  "cancel",
	}
}

func (m confirmModel) View() string {
	content := titleStyle.Render(m.title) + "\n\n" + m.message + "\n\n"
	content += "y " + m.yesLabel + "    n " + m.noLabel
	return overlayBoxStyle.Render(content)
}
