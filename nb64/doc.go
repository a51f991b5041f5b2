// Package nb64 implements the console-flavored base64 alphabet used to make
// binary token blobs safe inside URL query strings.
//
// The transform is standard base64 with a bijective character substitution:
// '+'→'.', '/'→'-', '='→'*'. Decode applies the inverse substitution and then
// standard base64 decoding, so Decode(Encode(b)) == b for every byte
// sequence b, including the empty one.
//
// # What this package must NOT do
//
//   - Import any other nexAuth package.
//   - Accept mixed-alphabet input leniently — characters from the standard
//     alphabet that were supposed to be substituted fail decoding.
package nb64
