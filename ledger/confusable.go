// Copyright 2025 Aurum Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ledger

import "fmt"

// confusables maps denied homoglyph runes to the ASCII letter they imitate.
// The set covers the Cyrillic and Greek characters that render identically
// or near-identically to Latin letters in common fonts, which is what makes
// them usable to spoof a sender or recipient identifier. Canonicalization
// rejects these outright rather than silently folding them, since a fold
// would make two visually identical but semantically distinct identifiers
// encode to the same bytes.
var confusables = map[rune]rune{
	// Cyrillic lowercase
	'а': 'a', // а
	'е': 'e', // е
	'о': 'o', // о
	'р': 'p', // р
	'с': 'c', // с
	'у': 'y', // у
	'х': 'x', // х
	'ѕ': 's', // ѕ
	'і': 'i', // і
	'ј': 'j', // ј
	'һ': 'h', // һ
	'ԁ': 'd', // ԁ
	'ԛ': 'q', // ԛ
	'ԝ': 'w', // ԝ

	// Cyrillic uppercase
	'А': 'A', // А
	'В': 'B', // В
	'Е': 'E', // Е
	'К': 'K', // К
	'М': 'M', // М
	'Н': 'H', // Н
	'О': 'O', // О
	'Р': 'P', // Р
	'С': 'C', // С
	'Т': 'T', // Т
	'У': 'Y', // У
	'Х': 'X', // Х
	'Ѕ': 'S', // Ѕ
	'І': 'I', // І
	'Ј': 'J', // Ј

	// Greek lowercase
	'ο': 'o', // ο
	'ι': 'i', // ι
	'ν': 'v', // ν
	'υ': 'u', // υ

	// Greek uppercase
	'Α': 'A', // Α
	'Β': 'B', // Β
	'Ε': 'E', // Ε
	'Ζ': 'Z', // Ζ
	'Η': 'H', // Η
	'Ι': 'I', // Ι
	'Κ': 'K', // Κ
	'Μ': 'M', // Μ
	'Ν': 'N', // Ν
	'Ο': 'O', // Ο
	'Ρ': 'P', // Ρ
	'Τ': 'T', // Τ
	'Υ': 'Y', // Υ
	'Χ': 'X', // Χ
}

// checkConfusables rejects a string field containing any denied homoglyph.
func checkConfusables(field string, value string) error {
	for _, r := range value {
		if latin, ok := confusables[r]; ok {
			return encodeError(
				ErrConfusableString,
				field,
				fmt.Sprintf(
					"confusable character %U imitating %q",
					r,
					string(latin),
				),
			)
		}
	}
	return nil
}
