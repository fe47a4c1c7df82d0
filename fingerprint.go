package tokamak

import (
	"encoding/binary"
	"fmt"
	"hash"
	"math"

	"golang.org/x/crypto/blake2b"
)

// Fingerprint digests the externally visible state of the shape: profile
// points, working plane, naming and export metadata, placement angles,
// rotation angle and the fingerprints of boolean operands. Operand solids
// are never visited, only their own fingerprint chains, so the cost of a
// fingerprint is bounded by profile recomputation. Mutating any operand
// therefore invalidates every owner transitively at the next solid read.
func (s *Shape) Fingerprint() ([]byte, error) {
	h, _ := blake2b.New256(nil)
	if err := s.fingerprintInto(h, make(map[*Shape]bool)); err != nil {
		return nil, err
	}
	return h.Sum(nil), nil
}

func (s *Shape) fingerprintInto(h hash.Hash, visited map[*Shape]bool) error {
	if visited[s] {
		// Aliased or cyclic operand reference: identity is enough, the
		// content was already digested once.
		fmt.Fprintf(h, "%p", s)
		return nil
	}
	visited[s] = true

	hashString(h, string(s.kind))
	hashString(h, s.Name)
	hashString(h, s.MaterialTag)
	hashString(h, s.STPFilename)
	hashString(h, s.STLFilename)
	hashString(h, s.TetMesh)
	hashString(h, string(s.Workplane))
	hashFloats(h, s.Color[:]...)
	hashFloats(h, s.RotationAngle, s.distance, s.radius, s.sectorStart)
	// Variable length lists are length framed so a value cannot migrate
	// across an adjacent list boundary without changing the digest.
	hashLen(h, len(s.AzimuthPlacementAngles))
	hashFloats(h, s.AzimuthPlacementAngles...)
	hashLen(h, len(s.path))
	for _, p := range s.path {
		hashFloats(h, p.X, p.Y)
	}

	prof, err := s.Profile()
	if err != nil {
		return err
	}
	hashLen(h, len(prof))
	for _, pt := range prof {
		hashFloats(h, pt.X, pt.Z)
		hashString(h, pt.Conn.String())
	}

	for _, set := range [][]*Shape{s.Cut, s.Intersect, s.Union} {
		hashString(h, "---")
		for _, operand := range set {
			if err := operand.fingerprintInto(h, visited); err != nil {
				return err
			}
		}
	}
	return nil
}

func hashLen(h hash.Hash, n int) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], uint32(n))
	h.Write(b[:])
}

func hashString(h hash.Hash, s string) {
	var n [4]byte
	binary.LittleEndian.PutUint32(n[:], uint32(len(s)))
	h.Write(n[:])
	h.Write([]byte(s))
}

func hashFloats(h hash.Hash, vals ...float64) {
	var b [8]byte
	for _, v := range vals {
		binary.LittleEndian.PutUint64(b[:], math.Float64bits(v))
		h.Write(b[:])
	}
}
