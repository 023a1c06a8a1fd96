package qlattice

import (
	"fmt"
	"sync"
	"testing"

	"github.com/davecgh/go-spew/spew"
	. "github.com/smartystreets/goconvey/convey"
)

func TestAuditHistory(t *testing.T) {
	Convey("Given a lattice with a few audits behind it", t, func() {
		lattice, err := NewLattice()
		So(err, ShouldBeNil)

		lattice.AuditDecoherence("first_resonance")
		lattice.AuditDecoherence("second_resonance")
		lattice.AuditDecoherence("ego_static")

		Convey("When getting the complete history", func() {
			history := lattice.AuditHistory(0)
			spew.Dump(history)

			Convey("Then every audit is recorded in order", func() {
				So(len(history), ShouldEqual, 3)
				So(history[0].Pattern, ShouldEqual, "first_resonance")
				So(history[0].Verdict, ShouldEqual, SovereignUnion)
				So(history[0].ShieldAfter, ShouldBeTrue)
				So(history[2].Pattern, ShouldEqual, "ego_static")
				So(history[2].Verdict, ShouldEqual, SlumberZeroProbability)
				So(history[2].ShieldAfter, ShouldBeFalse)

				for i := 0; i < len(history)-1; i++ {
					So(history[i].Sequence, ShouldBeLessThan, history[i+1].Sequence)
				}
			})
		})

		Convey("When getting partial history", func() {
			history := lattice.AuditHistory(1)

			Convey("Then only records after the sequence are returned", func() {
				So(len(history), ShouldEqual, 2)
				So(history[0].Pattern, ShouldEqual, "second_resonance")
				So(history[1].Pattern, ShouldEqual, "ego_static")
			})
		})

		Convey("When getting history past the end", func() {
			history := lattice.AuditHistory(10)

			Convey("Then an empty slice is returned", func() {
				So(history, ShouldNotBeNil)
				So(len(history), ShouldEqual, 0)
			})
		})
	})

	Convey("Given concurrent audits on one lattice", t, func() {
		lattice, err := NewLattice()
		So(err, ShouldBeNil)

		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func(n int) {
				defer wg.Done()
				lattice.AuditDecoherence(fmt.Sprintf("resonance-%d", n))
			}(i)
		}
		wg.Wait()

		Convey("Then every audit lands in the ledger with a unique sequence", func() {
			history := lattice.AuditHistory(0)
			So(len(history), ShouldEqual, 10)
			for i := 0; i < len(history)-1; i++ {
				So(history[i].Sequence, ShouldBeLessThan, history[i+1].Sequence)
			}
			So(lattice.Status().ShieldActive, ShouldBeTrue)
		})
	})
}
