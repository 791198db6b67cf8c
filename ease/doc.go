// Package ease provides the catalog of easing equations used by tweens to
// map normalized elapsed time to normalized progress.
//
// Every equation in this package is a pure function over [0,1]: f(0) must
// equal 0 and f(1) must equal 1. The overshoot families (Back, Elastic) are
// permitted to leave [0,1] at intermediate t, but must still satisfy the
// boundary conditions. Equations hold no state and allocate nothing, so a
// single value may be shared across any number of tweens.
package ease
