package start_wizard

// StartWizardRequest HTTP request model
// Venue опционален: заполняется, когда площадка выбрана до открытия мастера
type StartWizardRequest struct {
	Venue *string `json:"venue,omitempty"`
}
