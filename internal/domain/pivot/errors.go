package pivot

import "errors"

// Sentinel error kinds for this package. These allow errors.Is from callers.
var (
	ErrMissingColumns = errors.New("missing required columns")
	ErrDuplicateKey   = errors.New("duplicate advisor/category pair")
)

// MissingColumnsWarning is shown in place of the heatmap when the input
// lacks a required column.
const MissingColumnsWarning = "❗ El archivo no contiene las columnas necesarias: 'asesor', 'categoria' y 'promedio_conteo'."
