// Package elf decodes the fixed header record at the start of an ELF file.
//
// Decoding is a pure function of the input bytes. The identification block
// selects the word size and byte order used for the rest of the record, and
// every enumerated field is checked against a closed table of known codes.
// Program headers, section headers and everything past the header record are
// out of scope.
package elf
