package conflict

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/railops/railway-traffic-optimizer/pkg/core"
)

func makeSection(tracks int) *core.Section {
	from := core.NewStation("Central", "CTL", 51.5, -0.12, 12, true)
	to := core.NewStation("Harbour", "HBR", 51.5, -0.08, 4, false)
	return core.NewSection(from, to, 12.5, 160, tracks)
}

func makeTrain(number string, sec *core.Section) *core.Train {
	t := core.NewTrain(number, "svc "+number, core.TrainPassenger, 120, 200)
	t.CurrentSection = sec
	return t
}

var _ = Describe("CompetesForResource", func() {
	var sec *core.Section

	BeforeEach(func() {
		sec = makeSection(1)
	})

	Context("with nil trains", func() {
		It("should not conflict", func() {
			Expect(CompetesForResource(nil, makeTrain("A", sec))).To(BeFalse())
			Expect(CompetesForResource(makeTrain("A", sec), nil)).To(BeFalse())
		})
	})

	Context("with unplaced trains", func() {
		It("should not conflict when either train has no section", func() {
			placed := makeTrain("A", sec)
			unplaced := makeTrain("B", nil)
			Expect(CompetesForResource(placed, unplaced)).To(BeFalse())
			Expect(CompetesForResource(unplaced, placed)).To(BeFalse())
			Expect(CompetesForResource(unplaced, unplaced)).To(BeFalse())
		})
	})

	Context("with both trains placed", func() {
		It("should conflict on the identical section", func() {
			a := makeTrain("A", sec)
			b := makeTrain("B", sec)
			Expect(CompetesForResource(a, b)).To(BeTrue())
			Expect(CompetesForResource(b, a)).To(BeTrue())
		})

		It("should not conflict across different sections, even adjacent ones", func() {
			// Sections sharing a station still do not conflict:
			// adjacent-section contention is out of the model.
			other := core.NewSection(sec.ToStation, core.NewStation("Airport", "APT", 51.47, -0.45, 6, false), 30.0, 200, 2)
			a := makeTrain("A", sec)
			b := makeTrain("B", other)
			Expect(CompetesForResource(a, b)).To(BeFalse())
		})
	})
})

var _ = Describe("SectionLoads", func() {
	It("should group trains by occupied section and skip unplaced trains", func() {
		sec1 := makeSection(1)
		sec2 := makeSection(2)
		a := makeTrain("A", sec1)
		b := makeTrain("B", sec1)
		c := makeTrain("C", sec2)
		d := makeTrain("D", nil)

		loads := SectionLoads([]*core.Train{a, b, c, d})
		Expect(loads).To(HaveLen(2))
		Expect(loads[sec1.ID].Trains).To(ConsistOf(a, b))
		Expect(loads[sec2.ID].Trains).To(ConsistOf(c))
	})

	It("should flag sections loaded beyond their track count", func() {
		sec := makeSection(1)
		loads := SectionLoads([]*core.Train{makeTrain("A", sec), makeTrain("B", sec)})
		Expect(loads[sec.ID].Overloaded()).To(BeTrue())

		twin := makeSection(2)
		loads = SectionLoads([]*core.Train{makeTrain("C", twin), makeTrain("D", twin)})
		Expect(loads[twin.ID].Overloaded()).To(BeFalse())
	})
})
