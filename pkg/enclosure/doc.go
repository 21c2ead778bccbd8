// Package enclosure generates a 3D-printable rack-mount enclosure for
// stacked network-switch units as a CSG operation tree.
//
// Generation is a single deterministic pass: Params are validated,
// the dimension solver produces an immutable Dimensions record, the
// chassis profile and the five cutout generators each derive their
// geometry from it independently, and the assembler subtracts the
// union of cutouts from the body and applies the final orientation.
//
// Coordinate system: X spans the rack width, centered on the rack
// centerline; Y is vertical with the panel bottom at 0; Z is depth
// with the front face at 0 increasing toward the back. The flat print
// orientation leaves the front panel on the bed plane.
package enclosure
