package arena

import (
	"testing"

	"github.com/go-quicktest/qt"
)

func TestScratchPushAndCommit(t *testing.T) {
	a := New()
	s := a.NewScratch()
	s.Push('h')
	s.Push('i')
	qt.Assert(t, qt.DeepEquals(s.Bytes(), []byte("hi")))
	qt.Assert(t, qt.Equals(s.Commit(), "hi"))
}

func TestScratchExtend(t *testing.T) {
	a := New()
	s := a.NewScratch()
	s.Extend([]byte("hello "))
	s.Extend([]byte("world"))
	qt.Assert(t, qt.Equals(s.Commit(), "hello world"))
}

func TestScratchEmptyCommitIsEmptyString(t *testing.T) {
	a := New()
	s := a.NewScratch()
	qt.Assert(t, qt.Equals(s.Commit(), ""))
}

func TestScratchDiscard(t *testing.T) {
	a := New()
	s := a.NewScratch()
	s.Push('x')
	s.Discard()
	qt.Assert(t, qt.Equals(s.Commit(), ""))
}

func TestScratchGrowsAcrossSlabBoundary(t *testing.T) {
	a := New()
	s := a.NewScratch()
	big := make([]byte, 2000)
	for i := range big {
		big[i] = 'a'
	}
	s.Extend(big)
	committed := s.Commit()
	qt.Assert(t, qt.Equals(len(committed), 2000))

	s2 := a.NewScratch()
	s2.Push('z')
	qt.Assert(t, qt.Equals(s2.Commit(), "z"))
}

func TestPushStripUnderscoresValid(t *testing.T) {
	a := New()
	s := a.NewScratch()
	ok := s.PushStripUnderscores([]byte("1_000_000"))
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(s.Commit(), "1000000"))
}

func TestPushStripUnderscoresRejectsLeadingUnderscore(t *testing.T) {
	a := New()
	s := a.NewScratch()
	ok := s.PushStripUnderscores([]byte("_100"))
	qt.Assert(t, qt.IsFalse(ok))
}

func TestPushStripUnderscoresRejectsTrailingUnderscore(t *testing.T) {
	a := New()
	s := a.NewScratch()
	ok := s.PushStripUnderscores([]byte("100_"))
	qt.Assert(t, qt.IsFalse(ok))
}

func TestPushStripUnderscoresRejectsDoubleUnderscore(t *testing.T) {
	a := New()
	s := a.NewScratch()
	ok := s.PushStripUnderscores([]byte("1__000"))
	qt.Assert(t, qt.IsFalse(ok))
}
