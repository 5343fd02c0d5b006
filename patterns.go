package conjugador

// Rule tables of the classifier, one per tense family. Roots are checked
// first, then exact infinitives, then suffixes from the longest down.

// roots maps derived verbs of each listed root to "-root".
func roots(names ...string) []rule {
	out := make([]rule, len(names))
	for i, n := range names {
		out[i] = rule{matchRoot, n, Pattern("-" + n)}
	}
	return out
}

// exact gives each listed verb a class of its own.
func exact(verbs ...string) []rule {
	out := make([]rule, len(verbs))
	for i, v := range verbs {
		out[i] = rule{matchExact, v, Pattern(v)}
	}
	return out
}

// exactAs puts the listed verbs in class p.
func exactAs(p Pattern, verbs ...string) []rule {
	out := make([]rule, len(verbs))
	for i, v := range verbs {
		out[i] = rule{matchExact, v, p}
	}
	return out
}

// suffixes gives each listed ending its own "-suffix" class.
func suffixes(sfx ...string) []rule {
	out := make([]rule, len(sfx))
	for i, s := range sfx {
		out[i] = rule{matchSuffix, s, Pattern("-" + s)}
	}
	return out
}

// suffixAs puts every verb ending in one of sfx in class p.
func suffixAs(p Pattern, sfx ...string) []rule {
	out := make([]rule, len(sfx))
	for i, s := range sfx {
		out[i] = rule{matchSuffix, s, p}
	}
	return out
}

// regularEndings is the fallback shared by every personal family.
var regularEndings = suffixes("ar", "er", "ir")

var familyRules = [familyCount][]rule{
	PresentFamily:            presentRules,
	ImperfectFamily:          imperfectRules,
	PreteriteFamily:          preteriteRules,
	FutureFamily:             futureRules,
	PresentSubjunctiveFamily: presentSubjunctiveRules,
	PastSubjunctiveFamily:    pastSubjunctiveRules,
	ParticipleFamily:         participleRules,
}

var presentRules = concatRules(
	roots("dar", "estar", "ler", "ter", "ver", "vir"),
	exact(
		"abaiucar", "afiuzar", "ajesuitar", "agenciar", "ansiar", "apaular",
		"aprazer", "apresenciar", "arremediar", "aspergir", "ateizar", "aunar",
		"aviusar", "aziumar", "cadenciar", "cerzir", "comerciar", "consumir",
		"convergir", "crer", "dar", "denegrir", "desaprazer", "desarremediar",
		"descrer", "desembaular", "desmilinguir", "desnegociar", "despremiar",
		"desremediar", "destruir", "diligenciar", "divergir", "embaular",
		"embaucar", "ensimesmar", "enviusar", "esmiuçar", "estar", "explodir",
		"faiscar", "faular", "frigir", "fugir", "haver", "incendiar",
		"intermediar", "ir", "ler", "licenciar", "mediar", "obsequiar", "odiar",
		"parar", "pôr", "prazer", "premiar", "presenciar", "promediar",
		"puitar", "reaprazer", "requerer", "rer", "retorquir", "retorqüir",
		"reunir", "rir", "ruidar", "saudar", "ser", "sobreir", "sobresser",
		"sortir", "subir", "sumir", "ter", "tossir", "ver", "vir",
	),
	exactAs("desmilinguir", "desmilingüir"),
	suffixes("balaustrar", "construir", "negociar", "mobiliar", "engolir",
		"entupir", "gauchar"),
	suffixAs("-delinquir", "delinquir", "delinqüir"),
	suffixes(
		"acudir", "anquir", "arguir", "baular", "ciumar", "cobrir", "cuspir",
		"dormir", "embair", "erguer", "gredir", "guizar", "guspir", "inguar",
		"inguir", "inquar", "perder", "prazer", "querer", "quizar", "ruinar",
		"sorrir", "trazer", "viuvar",
	),
	suffixAs("-arguir", "argüir"),
	suffixAs("-inguir", "ingüir"),
	suffixes(
		"aguar", "aizar", "caber", "dizer", "ectir", "eizar", "ertir", "espir",
		"estir", "eguar", "eguir", "enhir", "entir", "equar", "ergir", "ernir",
		"ervir", "erzir", "fazer", "iguar", "iquar", "jazer", "medir", "pedir",
		"oibir", "oizar", "ouvir", "parir", "poder", "polir", "saber", "uizar",
		"valer", "egüir",
	),
	suffixes(
		"agir", "edir", "eger", "elir", "emir", "enir", "erir", "etir", "guir",
		"oiar", "quir", "ulir", "uzir", "güer", "güir", "qüir",
	),
	suffixes("aer", "air", "cer", "cir", "ear", "ger", "gir", "oar", "oer",
		"por", "uir"),
	regularEndings,
)

var imperfectRules = concatRules(
	roots("ter", "vir"),
	exact("ensimesmar", "ser", "sobresser", "ter", "vir"),
	exactAs("-por", "pôr"),
	suffixes("guer", "guir", "quir"),
	suffixAs("-guir", "güir"),
	suffixAs("-quir", "qüir"),
	suffixes("aer", "air", "oer", "oir", "por", "uer", "uir"),
	regularEndings,
)

var preteriteRules = concatRules(
	roots("dar", "estar", "ter", "ver", "vir"),
	exact("dar", "ensimesmar", "estar", "haver", "ir", "poder", "reaver",
		"requerer", "ser", "sobreir", "sobresser", "ter", "ver", "vir"),
	exactAs("-por", "pôr"),
	suffixes("prazer", "querer", "trazer", "fazer", "dizer",
		"aber", "guar", "guir", "quar", "quir"),
	suffixAs("-guir", "güir"),
	suffixAs("-quir", "qüir"),
	suffixes("aer", "air", "car", "çar", "gar", "oer", "por", "uir"),
	regularEndings,
)

var futureRules = concatRules(
	exact("ensimesmar", "pôr"),
	suffixes("trazer", "fazer", "dizer"),
	suffixAs(Regular, ""),
)

var presentSubjunctiveRules = concatRules(
	roots("dar", "estar"),
	exact(
		"abaiucar", "afiuzar", "ajesuitar", "ansiar", "apaular", "arremediar",
		"aunar", "aviusar", "aziumar", "dar", "desarremediar", "desembaular",
		"desmilinguir", "desremediar", "embaular", "embaucar", "ensimesmar",
		"esmiuçar", "estar", "explodir", "faiscar", "faular", "haver",
		"incendiar", "intermediar", "ir", "mediar", "odiar", "promediar",
		"puitar", "requerer", "reunir", "ruidar", "saudar", "ser", "sobreir",
		"sobresser",
	),
	exactAs("desmilinguir", "desmilingüir"),
	exactAs("-por", "pôr"),
	suffixes("balaustrar", "mobiliar", "gauchar"),
	suffixAs("-delinquir", "delinquir", "delinqüir"),
	suffixes("baular", "ciumar", "inguar", "inquar", "prazer", "querer",
		"ruinar", "viuvar"),
	suffixes("aguar", "aizar", "eizar", "eguar", "equar", "iguar", "iquar",
		"oibir", "oizar", "ouvir", "parir", "saber", "uizar"),
	suffixes("quir", "qüir", "guar", "oiar", "quar"),
	suffixes("car", "çar", "gar", "ear", "oar", "oer", "por"),
	regularEndings,
)

var pastSubjunctiveRules = concatRules(
	roots("dar", "estar", "ter", "ver", "vir"),
	exact("dar", "ensimesmar", "estar", "haver", "ir", "poder", "reaver", "ser",
		"sobreir", "sobresser", "ter", "ver", "vir"),
	exactAs("-por", "pôr"),
	exactAs("-er", "requerer"),
	suffixes("prazer", "querer", "trazer", "caber", "dizer", "fazer", "saber"),
	suffixAs("-guir", "guir", "güir"),
	suffixAs("-quir", "quir", "qüir"),
	suffixes("aer", "air", "oer", "oir", "por", "uer", "uir"),
	regularEndings,
)

var participleRules = concatRules(
	roots("ver", "vir"),
	exact(
		"absolver", "aceitar", "acender", "anexar", "assentar", "benzer",
		"despertar", "dispersar", "distender", "distinguir", "eleger", "encher",
		"entregar", "envolver", "enxugar", "expressar", "exprimir", "expulsar",
		"extinguir", "fartar", "findar", "frigir", "ganhar", "gastar", "isentar",
		"juntar", "libertar", "limpar", "manifestar", "matar", "malquerer",
		"morrer", "murchar", "ocultar", "pagar", "pegar", "prender", "romper",
		"salvar", "secar", "segurar", "soltar", "sujeitar", "suspender",
		"vagar", "ver", "vir",
	),
	exactAs("-por", "pôr"),
	suffixes("imprimir", "screver", "abrir", "cobrir", "argir", "dizer",
		"ergir", "fazer"),
	suffixAs("-guer", "guer", "güer"),
	suffixAs("-guir", "guir", "güir"),
	suffixAs("-quer", "quer", "qüer"),
	suffixAs("-quir", "quir", "qüir"),
	suffixes("aer", "air", "oer", "oir", "uir", "por"),
	regularEndings,
)

func concatRules(groups ...[]rule) []rule {
	var out []rule
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}
