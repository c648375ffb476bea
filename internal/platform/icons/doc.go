// Package icons defines the stroke icons shared by web components.
//
// The catalog maps stable icon identifiers to outline paths on a 24x24 grid
// so components render icons without embedding raw path data.
package icons
