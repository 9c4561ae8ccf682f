// SPDX-License-Identifier: MIT

// Package css: the Code entity — construction, the lazy attribute cache
// and the public accessor surface. Derivation kernels live in their own
// files (logicals.go, distance.go, validate.go) per the package
// conventions; this file owns only plumbing and contracts.

package css

import (
	"fmt"
	"io"
	"path/filepath"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/quantalib/cssforge/alist"
	"github.com/quantalib/cssforge/gf2"
)

// internal cache keys for quantities that are memoized but not part of
// the public attribute set (and therefore not overridable).
const (
	attrRankHx Attr = "rank(hx)"
	attrRankHz Attr = "rank(hz)"
)

// Code is a CSS quantum code defined by the parity-check pair hx/hz.
// All derived attributes are lazy, memoized and override-aware; see the
// package documentation for the full contract.
type Code struct {
	name   string
	budget time.Duration
	seed   int64
	diag   io.Writer

	mu     sync.Mutex
	hx, hz gf2.Matrix
	cache  map[Attr]any
	frozen map[Attr]bool
	flight singleflight.Group
}

// NewCode builds a CSS code from hx (required) and options.
//
// hx and WithHz accept anything gf2.Convert accepts; conversion failures
// surface as gf2.ErrUnsupportedType / gf2.ErrNotBinary. When WithHz is
// omitted, hz becomes an independent copy of hx. An explicit hx/hz column
// mismatch is rejected here with ErrShapeMismatch; mismatches introduced
// later through overrides surface at first access instead.
func NewCode(hx any, opts ...Option) (*Code, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.budget <= 0 {
		return nil, fmt.Errorf("NewCode: %w", ErrBadBudget)
	}

	hxm, err := gf2.Convert(hx)
	if err != nil {
		return nil, fmt.Errorf("NewCode: hx: %w", err)
	}
	var hzm gf2.Matrix
	if o.hz != nil {
		if hzm, err = gf2.Convert(o.hz); err != nil {
			return nil, fmt.Errorf("NewCode: hz: %w", err)
		}
	} else {
		hzm = hxm.Clone()
	}
	if hxm.Cols() != hzm.Cols() {
		return nil, fmt.Errorf("NewCode: %w", ErrShapeMismatch)
	}

	c := &Code{
		name:   o.name,
		budget: o.budget,
		seed:   o.seed,
		diag:   o.diag,
		hx:     hxm,
		hz:     hzm,
		cache:  make(map[Attr]any),
		frozen: make(map[Attr]bool),
	}
	if err := c.Set(o.overrides); err != nil {
		return nil, fmt.Errorf("NewCode: %w", err)
	}

	return c, nil
}

// Set adds or replaces named attributes, bypassing derivation for those
// names from now on. Values are type-checked against the attribute's
// statically known shape (ErrBadOverride, ErrUnknownAttr) but never
// verified for correctness — the deliberate escape hatch.
//
// Replacing hx/hz does not invalidate attributes that were already
// memoized: derived attributes compute at most once per Code lifetime.
// Pin overrides before first access when that matters.
func (c *Code) Set(overrides map[Attr]any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for attr, v := range overrides {
		switch {
		case matrixAttrs[attr]:
			m, err := gf2.Convert(v)
			if err != nil {
				return fmt.Errorf("Set %q: %w", attr, ErrBadOverride)
			}
			switch attr {
			case AttrHx:
				c.hx = m
			case AttrHz:
				c.hz = m
			default:
				c.cache[attr] = m
				c.frozen[attr] = true
			}
		case intAttrs[attr]:
			n, ok := v.(int)
			if !ok {
				return fmt.Errorf("Set %q: %w", attr, ErrBadOverride)
			}
			c.cache[attr] = n
			c.frozen[attr] = true
		case attr == AttrValid:
			b, ok := v.(bool)
			if !ok {
				return fmt.Errorf("Set %q: %w", attr, ErrBadOverride)
			}
			c.cache[attr] = b
			c.frozen[attr] = true
		default:
			return fmt.Errorf("Set %q: %w", attr, ErrUnknownAttr)
		}
	}

	return nil
}

// Overridden reports whether attr was pinned by the caller (construction
// override or Set) rather than derived.
func (c *Code) Overridden(attr Attr) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.frozen[attr]
}

// Name returns the code's label.
func (c *Code) Name() string { return c.name }

// Hx returns the X-stabilizer check matrix. Treat as read-only.
func (c *Code) Hx() gf2.Matrix {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.hx
}

// Hz returns the Z-stabilizer check matrix. Treat as read-only.
func (c *Code) Hz() gf2.Matrix {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.hz
}

// N returns the block length: the shared column count of hx and hz.
// A column mismatch introduced after construction surfaces here as
// ErrShapeMismatch.
func (c *Code) N() (int, error) {
	return c.intAttr(AttrN, func() (int, error) {
		hx, hz := c.Hx(), c.Hz()
		if hx.Cols() != hz.Cols() {
			return 0, ErrShapeMismatch
		}

		return hx.Cols(), nil
	})
}

// K returns the logical qubit count n − rank(hx) − rank(hz). Under the
// commutation invariant this equals the row count of the logical bases;
// the Validator surfaces any disagreement (an overridden K is reported
// against the derived value, never replaced).
func (c *Code) K() (int, error) {
	return c.intAttr(AttrK, c.deriveK)
}

// deriveK is the rank-based K derivation, also used directly by the
// Validator so an overridden K can be checked without being recomputed
// into the cache.
func (c *Code) deriveK() (int, error) {
	n, err := c.N()
	if err != nil {
		return 0, err
	}
	rx, err := c.rankHx()
	if err != nil {
		return 0, err
	}
	rz, err := c.rankHz()
	if err != nil {
		return 0, err
	}

	return n - rx - rz, nil
}

// H returns the combined stabilizer matrix: hx stacked over hz.
func (c *Code) H() (gf2.Matrix, error) {
	return c.matAttr(AttrH, func() (gf2.Matrix, error) {
		return gf2.VStack(c.Hx(), c.Hz())
	})
}

// Lx returns a minimal generating set of logical X operators: vectors in
// ker(hz) that are independent of hx's row space, one row per logical
// qubit. See logicals.go for the derivation rule.
func (c *Code) Lx() (gf2.Matrix, error) {
	return c.matAttr(AttrLx, func() (gf2.Matrix, error) {
		return logicalBasis(c.Hz(), c.Hx())
	})
}

// Lz returns a minimal generating set of logical Z operators, the mirror
// of Lx: vectors in ker(hx) independent of hz's row space.
func (c *Code) Lz() (gf2.Matrix, error) {
	return c.matAttr(AttrLz, func() (gf2.Matrix, error) {
		return logicalBasis(c.Hx(), c.Hz())
	})
}

// CanonicalLx returns the comparison-stable form of Lx: full row-echelon
// reduction with normalized pivots. Always derived from the (possibly
// overridden) Lx; only an explicit override of this attribute itself
// short-circuits the reduction.
func (c *Code) CanonicalLx() (gf2.Matrix, error) {
	return c.matAttr(AttrCanonicalLx, func() (gf2.Matrix, error) {
		lx, err := c.Lx()
		if err != nil {
			return nil, err
		}

		return canonicalize(lx)
	})
}

// CanonicalLz returns the comparison-stable form of Lz.
func (c *Code) CanonicalLz() (gf2.Matrix, error) {
	return c.matAttr(AttrCanonicalLz, func() (gf2.Matrix, error) {
		lz, err := c.Lz()
		if err != nil {
			return nil, err
		}

		return canonicalize(lz)
	})
}

// MaxColWeight returns the largest column weight across hx and hz — the
// LDPC "l" parameter of the check pair.
func (c *Code) MaxColWeight() (int, error) {
	return c.intAttr(AttrL, func() (int, error) {
		return maxInt(gf2.MaxColWeight(c.Hx()), gf2.MaxColWeight(c.Hz())), nil
	})
}

// MaxRowWeight returns the largest row weight across hx and hz — the
// LDPC "q" parameter of the check pair.
func (c *Code) MaxRowWeight() (int, error) {
	return c.intAttr(AttrQ, func() (int, error) {
		return maxInt(gf2.MaxRowWeight(c.Hx()), gf2.MaxRowWeight(c.Hz())), nil
	})
}

// Distance returns the code distance: the minimum Hamming weight over
// nontrivial logical operators of either type. Exact for small blocks,
// a budgeted upper bound otherwise — see distance.go for the regime
// boundary. Callers needing a certified value should override AttrD.
func (c *Code) Distance() (int, error) {
	return c.intAttr(AttrD, c.estimateDistance)
}

// Params bundles the summary parameters (l,q)-[[n,k,d]]. Deriving it may
// trigger the distance estimate, the expensive member of the tuple.
func (c *Code) Params() (Params, error) {
	n, err := c.N()
	if err != nil {
		return Params{}, err
	}
	k, err := c.K()
	if err != nil {
		return Params{}, err
	}
	d, err := c.Distance()
	if err != nil {
		return Params{}, err
	}
	l, err := c.MaxColWeight()
	if err != nil {
		return Params{}, err
	}
	q, err := c.MaxRowWeight()
	if err != nil {
		return Params{}, err
	}

	return Params{N: n, K: k, D: d, L: l, Q: q}, nil
}

// Params is the summary parameter tuple of a code.
type Params struct {
	N int // block length
	K int // logical qubit count
	D int // distance (exact or declared upper bound)
	L int // max column weight of the check pair
	Q int // max row weight of the check pair
}

// String renders the conventional (l,q)-[[n,k,d]] form.
func (p Params) String() string {
	return fmt.Sprintf("(%d,%d)-[[%d,%d,%d]]", p.L, p.Q, p.N, p.K, p.D)
}

// String labels the code with its cheap parameters. The distance is shown
// only when already memoized or overridden ("?" otherwise): printing a
// code must never trigger the expensive estimate.
func (c *Code) String() string {
	n, errN := c.N()
	k, errK := c.K()
	if errN != nil || errK != nil {
		return fmt.Sprintf("%s <params: [[?,?,?]]>", c.name)
	}
	d := "?"
	if v, ok := c.peek(AttrD); ok {
		d = fmt.Sprintf("%d", v.(int))
	}

	return fmt.Sprintf("%s <params: [[%d,%d,%s]]>", c.name, n, k, d)
}

// Save writes each named matrix attribute to a MacKay adjacency-list file
// under dir, named "{label}_{attr}.alist" with the label defaulting to the
// code's name. Non-matrix attributes are rejected with ErrNotMatrixAttr.
func (c *Code) Save(dir, label string, props ...Attr) error {
	if label == "" {
		label = c.name
	}
	for _, p := range props {
		if !matrixAttrs[p] {
			return fmt.Errorf("Save %q: %w", p, ErrNotMatrixAttr)
		}
		m, err := c.matrixByAttr(p)
		if err != nil {
			return fmt.Errorf("Save %q: %w", p, err)
		}
		path := filepath.Join(dir, fmt.Sprintf("%s_%s.alist", label, p))
		if err := alist.Save(path, m); err != nil {
			return fmt.Errorf("Save %q: %w", p, err)
		}
	}

	return nil
}

// matrixByAttr resolves a matrix-valued attribute through its accessor so
// saving derives lazily like any other access.
func (c *Code) matrixByAttr(p Attr) (gf2.Matrix, error) {
	switch p {
	case AttrHx:
		return c.Hx(), nil
	case AttrHz:
		return c.Hz(), nil
	case AttrH:
		return c.H()
	case AttrLx:
		return c.Lx()
	case AttrLz:
		return c.Lz()
	case AttrCanonicalLx:
		return c.CanonicalLx()
	case AttrCanonicalLz:
		return c.CanonicalLz()
	default:
		return nil, ErrNotMatrixAttr
	}
}

// rankHx memoizes rank(hx); shared by K, the Validator and the distance
// estimator.
func (c *Code) rankHx() (int, error) {
	return c.intAttr(attrRankHx, func() (int, error) {
		return gf2.Rank(c.Hx())
	})
}

// rankHz memoizes rank(hz).
func (c *Code) rankHz() (int, error) {
	return c.intAttr(attrRankHz, func() (int, error) {
		return gf2.Rank(c.Hz())
	})
}

// attr is the compute-once door every derived attribute passes through:
// cached (or overridden) values return immediately; otherwise the compute
// closure runs under a singleflight guard keyed by the attribute name, so
// concurrent first access computes once and never observes a torn value.
// Failed computations are not cached — the next access retries.
func (c *Code) attr(a Attr, compute func() (any, error)) (any, error) {
	c.mu.Lock()
	if v, ok := c.cache[a]; ok {
		c.mu.Unlock()
		return v, nil
	}
	c.mu.Unlock()

	v, err, _ := c.flight.Do(string(a), func() (any, error) {
		c.mu.Lock()
		if v, ok := c.cache[a]; ok {
			c.mu.Unlock()
			return v, nil
		}
		c.mu.Unlock()

		v, err := compute()
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.cache[a] = v
		c.mu.Unlock()

		return v, nil
	})
	if err != nil {
		return nil, err
	}

	return v, nil
}

// intAttr adapts attr for int-valued attributes.
func (c *Code) intAttr(a Attr, compute func() (int, error)) (int, error) {
	v, err := c.attr(a, func() (any, error) {
		n, err := compute()
		if err != nil {
			return nil, err
		}

		return n, nil
	})
	if err != nil {
		return 0, err
	}

	return v.(int), nil
}

// matAttr adapts attr for matrix-valued attributes.
func (c *Code) matAttr(a Attr, compute func() (gf2.Matrix, error)) (gf2.Matrix, error) {
	v, err := c.attr(a, func() (any, error) {
		m, err := compute()
		if err != nil {
			return nil, err
		}

		return m, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(gf2.Matrix), nil
}

// peek reports a cached value without triggering computation.
func (c *Code) peek(a Attr) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.cache[a]

	return v, ok
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}
