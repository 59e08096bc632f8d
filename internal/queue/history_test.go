/*
 * stax - a bitboard engine for falling-block placement and perfect-clear search
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fourwide/stax/internal/finesse"
	"github.com/fourwide/stax/internal/piece"
)

func TestHistoryEqualityIgnoresFinesse(t *testing.T) {
	var a, b History
	a.Push(Pair{Kind: 'I', Finesse: finesse.With([]finesse.Key{finesse.SonicDrop})})
	a.Push(Pair{Kind: 'O', Finesse: finesse.With([]finesse.Key{finesse.MoveLeft, finesse.SonicDrop})})

	b.Push(Pair{Kind: 'I', Finesse: finesse.With([]finesse.Key{finesse.DasLeft, finesse.SonicDrop})})
	b.Push(Pair{Kind: 'O', Finesse: finesse.New()})

	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Queue(), b.Queue())
}

func TestHistoryQueueProjection(t *testing.T) {
	var h History
	h.Push(Pair{Kind: 'I'})
	h.Push(Pair{Kind: 'J'})
	assert.Equal(t, "IJ", h.Queue().String())
}

func TestHistoryShortRendersPairs(t *testing.T) {
	var h History
	h.Push(Pair{Kind: 'I', Finesse: finesse.With([]finesse.Key{finesse.SonicDrop})})
	assert.Equal(t, "(I:sd)", h.Short())
}

func TestHistoryCapacity(t *testing.T) {
	var h History
	for i := 0; i < HistoryCapacity; i++ {
		assert.True(t, h.Push(Pair{Kind: piece.Kind('I')}))
	}
	assert.False(t, h.Push(Pair{Kind: 'I'}))
}
