// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package home

import "errors"

var (
	// ErrCardNotBound is returned by [Board.Activate] for a card that has no
	// target on the current board, e.g. the negative card while the result
	// is still pending.
	ErrCardNotBound = errors.New("card is not bound")
	// ErrUnknownControl is returned by [Board.Activate] for a control other
	// than primary or secondary.
	ErrUnknownControl = errors.New("unknown card control")
)
