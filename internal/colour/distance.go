package colour

// EuclideanRGB returns the squared Euclidean distance between two packed
// pixels over red, green and blue. Alpha is ignored. The value is not
// normalised; it is only ever compared within one classification pass.
func EuclideanRGB(p, q uint32) int {
	pr, pg, pb := Channels(p)
	qr, qg, qb := Channels(q)
	dr := int(pr) - int(qr)
	dg := int(pg) - int(qg)
	db := int(pb) - int(qb)
	return dr*dr + dg*dg + db*db
}

// Metric measures how far a pixel is from each bucket of one palette.
// Implementations are bound to a palette and its colourspace.
type Metric interface {
	// Prepare converts a pixel into whatever form Distance needs.
	// It is called once per pixel so conversion is not repeated per bucket.
	Prepare(pixel uint32) Prepared

	// Distance returns the dissimilarity between a prepared pixel and bucket i.
	Distance(p Prepared, bucket int) float64

	// Len returns the number of buckets.
	Len() int
}

// Prepared is a pixel converted into a metric's working representation.
type Prepared struct {
	RGB uint32
	Lab OkLab
}

// rgbMetric compares pixels to RGB buckets with EuclideanRGB.
type rgbMetric struct {
	buckets []uint32
}

func (m rgbMetric) Prepare(pixel uint32) Prepared {
	return Prepared{RGB: pixel & RGBMask}
}

func (m rgbMetric) Distance(p Prepared, bucket int) float64 {
	return float64(EuclideanRGB(p.RGB, m.buckets[bucket]))
}

func (m rgbMetric) Len() int { return len(m.buckets) }

// labMetric compares pixels to OkLab buckets with CIEDE2000.
type labMetric struct {
	buckets []OkLab
}

func (m labMetric) Prepare(pixel uint32) Prepared {
	rgb := pixel & RGBMask
	return Prepared{RGB: rgb, Lab: RGBToOkLab(rgb)}
}

func (m labMetric) Distance(p Prepared, bucket int) float64 {
	return CIEDE2000(p.Lab, m.buckets[bucket])
}

func (m labMetric) Len() int { return len(m.buckets) }
