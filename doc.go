// Package mnemonicode encodes binary data as a sequence of common English
// words and decodes such a sequence back into the original bytes. Short
// binary payloads (keys, fingerprints, activation codes) become text that
// can be read over the phone, typed or memorized with a much lower
// transcription error rate than hex or base64.
//
// The codec follows Oren Tirosh's mnemonic encoding: a fixed dictionary of
// 1626 base words turns every four input bytes into three words, and seven
// dedicated remainder words tag a trailing three byte chunk so that decoding
// never needs an explicit length. Encoding is deterministic and total;
// decoding validates every token and rejects anything the encoder could not
// have produced.
//
//	s := mnemonicode.EncodeToString([]byte{101, 2, 240, 6, 108, 11, 20, 97})
//	// s == "digital-apollo-aroma--rival-artist-rebel"
//
//	data, err := mnemonicode.DecodeString(s)
//	// data == []byte{101, 2, 240, 6, 108, 11, 20, 97}
//
// Word separators are free-form: any run of non-letter characters splits
// words, so decoding accepts the same payload spoken as
// "digital apollo aroma rival artist rebel".
//
// The dictionary and its reverse index are built once at startup and never
// mutated, so all functions are safe for concurrent use.
package mnemonicode
