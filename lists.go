package conjugador

// setOf builds a membership set from a closed word list.
func setOf(words ...string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}

// derivatives maps a prefixed verb to the irregular root it conjugates like.
var derivatives = func() map[string]string {
	roots := map[string][]string{
		"dar":   {"desdar", "redar"},
		"estar": {"sobestar", "sobre-estar", "sobreestar", "sobrestar"},
		"ler":   {"reler", "treler", "tresler"},
		"ter": {"abster", "ater", "conter", "deter", "entreter", "manter",
			"obter", "reter", "suster"},
		"ver": {"antever", "circunver", "entrever", "interver", "prever",
			"prover", "rever", "telever"},
		"vir": {"advir", "avir", "contravir", "convir", "desavir", "desconvir",
			"devir", "entrevir", "intervir", "obvir", "provir", "reavir",
			"reconvir", "revir", "sobrevir", "subvir"},
	}
	m := make(map[string]string)
	for root, verbs := range roots {
		for _, v := range verbs {
			m[v] = root
		}
	}
	return m
}()

// Weather verbs, conjugated in the third person singular only.
var thirdSingularOnly = setOf(
	"borraçar", "carujar", "chuvinhar", "merujar", "relampar", "trovejar",
)

// Verbs conjugated in the third persons only.
var thirdPersonOnly = setOf(
	"aprazer", "aulir", "concernir", "condoer", "desaprazer", "doer",
	"grassitar", "later", "prazer", "precludir", "precluir", "reaprazer",
	"zinir", "zornar",
)

// Verbs that only keep the forms stressed on the ending.
var arrhizotonicOnly = setOf(
	"adir", "aducir", "aguerrir", "combalir", "condir", "desempedernir",
	"desflorir", "desgornir", "despavorir", "desprecaver", "embair",
	"empedernir", "enfortir", "entalir", "esbaforir", "escarnir", "espavorir",
	"estransir", "estresir", "exinanir", "exir", "falir", "florir", "fornir",
	"fretenir", "garnir", "garrir", "gornir", "gualdir", "guarnir", "inanir",
	"lenir", "manutenir", "moquir", "pertransir", "precaver", "reaver",
	"reflorir", "remir", "renhir", "ressequir", "retransir", "suquir",
	"susquir", "transir",
)

// Verbs lacking the first person singular of the present indicative, and
// hence the whole present subjunctive.
var noFirstSingular = setOf(
	"abolir", "aborrir", "acupremir", "adurir", "apodrir", "balir", "banir",
	"barrir", "bramir", "brandir", "branquir", "buir", "carpir", "cernir",
	"colorir", "comburir", "comedir", "delir", "demolir", "demulcir",
	"descolorir", "descomedir", "emolir", "enganir", "esmarrir", "excelir",
	"extorquir", "fremir", "ganir", "guarir", "languir", "monir",
	"multicolorir", "parturir", "premir", "pruir", "prurir", "puir", "raer",
	"rebolir", "recolorir", "relinquir", "relinqüir", "reprurir", "retorquir",
	"retorqüir", "ruir", "soer",
)
