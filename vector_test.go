package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type VectorTestSuite struct {
	suite.Suite
	vec *Vector[uint16]
}

func (s *VectorTestSuite) SetupTest() {
	s.vec = NewVector[uint16]()
	s.Require().NoError(s.vec.Append([]uint16{10, 20, 30}))
}

func (s *VectorTestSuite) TestBasics() {
	s.Assert().Equal(3, s.vec.Len())
	s.Assert().False(s.vec.Empty())
	s.Assert().Equal([]uint16{10, 20, 30}, s.vec.Slice())

	v, err := s.vec.At(2)
	s.Require().NoError(err)
	s.Assert().Equal(uint16(30), v)
	_, err = s.vec.At(3)
	s.Assert().ErrorIs(err, ErrOutOfRange)

	s.Require().NoError(s.vec.Set(1, 99))
	s.Assert().Equal([]uint16{10, 99, 30}, s.vec.Slice())
	s.Assert().ErrorIs(s.vec.Set(-1, 0), ErrOutOfRange)
}

func (s *VectorTestSuite) TestGrowthPolicy() {
	vec := NewVector[uint16]()
	s.Require().NoError(vec.Push(1))
	s.Assert().Equal(minCapacity, vec.Cap(), "first allocation starts at the fixed minimum")

	for i := 0; i < minCapacity; i++ {
		s.Require().NoError(vec.Push(uint16(i)))
	}
	s.Assert().Equal(minCapacity*2, vec.Cap(), "growth doubles")
}

func (s *VectorTestSuite) TestInsertErase() {
	s.Require().NoError(s.vec.Insert(1, []uint16{1, 2}))
	s.Assert().Equal([]uint16{10, 1, 2, 20, 30}, s.vec.Slice())

	s.Require().NoError(s.vec.Erase(1, 2))
	s.Assert().Equal([]uint16{10, 20, 30}, s.vec.Slice())

	s.Assert().ErrorIs(s.vec.Insert(4, []uint16{0}), ErrOutOfRange)
	s.Assert().ErrorIs(s.vec.Erase(4, 1), ErrOutOfRange)

	// A negative count erases to the end, matching the clamp convention.
	s.Require().NoError(s.vec.Erase(1, -1))
	s.Assert().Equal([]uint16{10}, s.vec.Slice())
}

func (s *VectorTestSuite) TestInsertShiftsWithoutClobbering() {
	vec := NewVector[uint16]()
	for i := uint16(0); i < 32; i++ {
		s.Require().NoError(vec.Push(i))
	}
	s.Require().NoError(vec.Insert(1, []uint16{100, 101, 102}))

	want := []uint16{0, 100, 101, 102}
	for i := uint16(1); i < 32; i++ {
		want = append(want, i)
	}
	s.Assert().Equal(want, vec.Slice())
}

func (s *VectorTestSuite) TestResize() {
	s.Require().NoError(s.vec.Resize(5))
	s.Assert().Equal([]uint16{10, 20, 30, 0, 0}, s.vec.Slice())
	s.Require().NoError(s.vec.Resize(1))
	s.Assert().Equal([]uint16{10}, s.vec.Slice())
	s.Assert().ErrorIs(s.vec.Resize(-1), ErrOutOfRange)

	// Shrinking the length leaves stale elements behind; growing again
	// zero-fills them.
	s.Require().NoError(s.vec.Resize(3))
	s.Assert().Equal([]uint16{10, 0, 0}, s.vec.Slice())
}

func (s *VectorTestSuite) TestCloneAndMove() {
	dup, err := s.vec.Clone()
	s.Require().NoError(err)
	s.Assert().Equal(s.vec.Slice(), dup.Slice())
	s.Assert().Equal(dup.Len(), dup.Cap(), "clone is sized exactly")

	s.Require().NoError(dup.Set(0, 7))
	s.Assert().Equal([]uint16{10, 20, 30}, s.vec.Slice())

	moved := s.vec.Move()
	s.Assert().Equal([]uint16{10, 20, 30}, moved.Slice())
	s.Assert().True(s.vec.Empty())
	s.Assert().Zero(s.vec.Cap())
}

func (s *VectorTestSuite) TestShrinkToFit() {
	s.Require().NoError(s.vec.Reserve(100))
	s.Assert().GreaterOrEqual(s.vec.Cap(), 100)

	s.Require().NoError(s.vec.ShrinkToFit())
	s.Assert().Equal(3, s.vec.Cap())
	s.Assert().Equal([]uint16{10, 20, 30}, s.vec.Slice())

	s.vec.Clear()
	s.Require().NoError(s.vec.ShrinkToFit())
	s.Assert().Zero(s.vec.Cap())
}

func (s *VectorTestSuite) TestPopBack() {
	s.vec.PopBack()
	s.Assert().Equal([]uint16{10, 20}, s.vec.Slice())
	s.vec.PopBack()
	s.vec.PopBack()
	s.vec.PopBack() // popping empty is a no-op
	s.Assert().True(s.vec.Empty())
}

func TestVector(t *testing.T) {
	suite.Run(t, new(VectorTestSuite))
}

// --- Allocator behavior ---

func TestLimitAllocator(t *testing.T) {
	t.Run("GrowthFailsBeyondBudget", func(t *testing.T) {
		// 16 bytes hold the first 8-unit allocation; the doubling realloc
		// needs 32 more while the old block is still live.
		alloc := NewLimitAllocator(16)
		vec := NewVectorAlloc[uint16](alloc)

		for i := 0; i < 8; i++ {
			require.NoError(t, vec.Push(uint16(i)))
		}
		assert.Equal(t, 16, alloc.Used())

		err := vec.Push(8)
		require.ErrorIs(t, err, ErrOutOfMemory)

		// The failed growth leaves the vector untouched.
		assert.Equal(t, 8, vec.Len())
		assert.Equal(t, []uint16{0, 1, 2, 3, 4, 5, 6, 7}, vec.Slice())
		assert.Equal(t, 16, alloc.Used())
	})

	t.Run("ClearReturnsBudget", func(t *testing.T) {
		alloc := NewLimitAllocator(64)
		vec := NewVectorAlloc[uint16](alloc)
		require.NoError(t, vec.Append([]uint16{1, 2, 3}))
		assert.Positive(t, alloc.Used())

		vec.Clear()
		assert.Zero(t, alloc.Used())
	})

	t.Run("DecodeFailurePropagates", func(t *testing.T) {
		alloc := NewLimitAllocator(4)
		_, err := FromBytesAlloc([]byte("this will not fit"), alloc)
		require.ErrorIs(t, err, ErrOutOfMemory)
		assert.Zero(t, alloc.Used(), "a failed decode releases everything it reserved")
	})
}

func TestNextCapacity(t *testing.T) {
	assert.Equal(t, minCapacity, nextCapacity(0, 1))
	assert.Equal(t, minCapacity, nextCapacity(0, minCapacity))
	assert.Equal(t, 16, nextCapacity(0, 9))
	assert.Equal(t, 16, nextCapacity(8, 9))
	assert.Equal(t, 64, nextCapacity(8, 64))
	assert.Equal(t, 128, nextCapacity(8, 65))
	assert.Equal(t, 2048, nextCapacity(1024, 1025))
}
