// Package dateutil provides pure calendar computations and Spanish-locale
// date formatting for the CocoPet reporting tools.
//
// Every function that needs the current instant takes it as an explicit
// parameter, so all results are deterministic given their inputs. Functions
// never panic on bad input: formatting degrades to the "Fecha inválida"
// sentinel and parsing returns an error.
package dateutil
