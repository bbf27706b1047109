package port

// ModalRenderer applies modal pane transitions to the display.
type ModalRenderer interface {
	OpenLoginModal()
	CloseModal()
	ShowSignupPane()
	ShowLoginPane()
}
