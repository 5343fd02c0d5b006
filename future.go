package conjugador

var (
	futureEnds      = endings{"ei", "ás", "á", "emos", "eis", "ão"}
	conditionalEnds = endings{"ia", "ias", "ia", "íamos", "íeis", "iam"}
)

func (c *conjugator) futureIndicative(v Variant) Row {
	return c.fromInfinitive(v, futureEnds)
}

func (c *conjugator) conditional(v Variant) Row {
	return c.fromInfinitive(v, conditionalEnds)
}

// fromInfinitive builds the future and the conditional, whose endings
// attach to the whole infinitive.
func (c *conjugator) fromInfinitive(v Variant, ends endings) Row {
	stem := c.verb.InfinitiveFor(v)
	switch classify(c.verb, FutureFamily) {
	case "ensimesmar":
		return mask(ensimesmarRow(ends.withVowel("ar")), c.verb.thirdPersonMask())
	case "-dizer", "-fazer", "-trazer":
		stem = dropLast(stem, 3) + "r"
	case "pôr":
		stem = "por"
	}
	return mask(newParadigm(stem, ends).row(v), c.verb.thirdPersonMask())
}
