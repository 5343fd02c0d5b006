package conjugador

// spellings holds, per variant, the infinitives whose spelling differs in
// that variant. Keys are the spellings used in the other variants.
var spellings = [VariantCount]map[string]string{
	// Brazilian post-reform.
	BrazilianPostReform: {
		"accionar":            "acionar",
		"activar":             "ativar",
		"actualizar":          "atualizar",
		"actuar":              "atuar",
		"adjectivar":          "adjetivar",
		"agro-alimentar":      "agroalimentar",
		"anti-sepsiar":        "antissepsiar",
		"argüir":              "arguir",
		"arquitectar":         "arquitetar",
		"auto-abastecer":      "autoabastecer",
		"auto-administrar":    "autoadministrar",
		"auto-excitar":        "autoexcitar",
		"auto-excluir":        "autoexcluir",
		"auto-sugestionar":    "autossugestionar",
		"auto-suspender":      "autossuspender",
		"baptizar":            "batizar",
		"co-administrar":      "coadministrar",
		"co-arrendar":         "coarrendar",
		"co-delinquir":        "codelinquir",
		"co-delinqüir":        "codelinquir",
		"co-dirigir":          "codirigir",
		"co-editar":           "coeditar",
		"co-financiar":        "cofinanciar",
		"co-gerir":            "cogerir",
		"co-incinerar":        "coincinerar",
		"co-litigar":          "colitigar",
		"co-obrigar":          "coobrigar",
		"co-participar":       "coparticipar",
		"co-produzir":         "coproduzir",
		"co-responsabilizar":  "corresponsabilizar",
		"coleccionar":         "colecionar",
		"concetualizar":       "conceptualizar",
		"confecionar":         "confeccionar",
		"contra-indicar":      "contraindicar",
		"contra-informar":     "contrainformar",
		"contra-ordenar":      "contraordenar",
		"contra-revolucionar": "contrarrevolucionar",
		"contra-selar":        "contrasselar",
		"dececionar":          "decepcionar",
		"delinqüir":           "delinquir",
		"deliqüescer":         "deliquescer",
		"desactivar":          "desativar",
		"desactualizar":       "desatualizar",
		"desarquitectar":      "desarquitetar",
		"desbaptizar":         "desbatizar",
		"desensangüentar":     "desensanguentar",
		"desfreqüentar":       "desfrequentar",
		"desmilingüir":        "desmilinguir",
		"difractar":           "difratar",
		"direccionar":         "direcionar",
		"efectivar":           "efetivar",
		"efectuar":            "efetuar",
		"ensangüentar":        "ensanguentar",
		"eqüidistar":          "equidistar",
		"eqüipoler":           "equipoler",
		"eqüiponderar":        "equiponderar",
		"exactificar":         "exatificar",
		"exigüificar":         "exiguificar",
		"facturar":            "faturar",
		"freqüentar":          "frequentar",
		"inactivar":           "inativar",
		"infra-escapular":     "infraescapular",
		"injectar":            "injetar",
		"inspeccionar":        "inspecionar",
		"inspectar":           "inspetar",
		"interactuar":         "interatuar",
		"intercetar":          "interceptar",
		"intersectar":         "intersetar",
		"liqüefazer":          "liquefazer",
		"liqüescer":           "liquescer",
		"liqüidar":            "liquidar",
		"liqüidificar":        "liquidificar",
		"percecionar":         "percepcionar",
		"perfetibilizar":      "perfectibilizar",
		"preleccionar":        "prelecionar",
		"projectar":           "projetar",
		"reactivar":           "reativar",
		"reactualizar":        "reatualizar",
		"rebaptizar":          "rebatizar",
		"rececionar":          "recepcionar",
		"recetar":             "receptar",
		"redargüir":           "redarguir",
		"redireccionar":       "redirecionar",
		"reflectir":           "refletir",
		"relinqüir":           "relinquir",
		"retractar":           "retratar",
		"retroprojectar":      "retroprojetar",
		"sectorizar":          "setorizar",
		"seleccionar":         "selecionar",
		"selectar":            "seletar",
		"seqüenciar":          "sequenciar",
		"seqüestrar":          "sequestrar",
		"sobreelevar":         "sobre-elevar",
		"sobreendividar":      "sobre-endividar",
		"sobreerguer":         "sobre-erguer",
		"sobreexaltar":        "sobre-exaltar",
		"sobreexceder":        "sobre-exceder",
		"sobreexcitar":        "sobre-excitar",
		"sobreexpor":          "sobre-expor",
		"subjectivar":         "subjetivar",
		"subjectivizar":       "subjetivizar",
		"supra-excitar":       "supraexcitar",
		"teledetetar":         "teledetectar",
		"traccionar":          "tracionar",
		"tranqüilizar":        "tranquilizar",
		"transaccionar":       "transacionar",
		"ultra-romantizar":    "ultrarromantizar",
		"ungüentar":           "unguentar",
	},
	// Brazilian pre-reform.
	BrazilianPreReform: {
		"accionar":            "acionar",
		"activar":             "ativar",
		"actualizar":          "atualizar",
		"actuar":              "atuar",
		"adjectivar":          "adjetivar",
		"agroalimentar":       "agro-alimentar",
		"amnistiar":           "anistiar",
		"antissepsiar":        "anti-sepsiar",
		"arguir":              "argüir",
		"arquitectar":         "arquitetar",
		"autoabastecer":       "auto-abastecer",
		"autoadministrar":     "auto-administrar",
		"autoexcitar":         "auto-excitar",
		"autoexcluir":         "auto-excluir",
		"autossugestionar":    "auto-sugestionar",
		"autossuspender":      "auto-suspender",
		"baptizar":            "batizar",
		"coadministrar":       "co-administrar",
		"coarrendar":          "co-arrendar",
		"co-delinquir":        "co-delinqüir",
		"codelinquir":         "co-delinqüir",
		"codirigir":           "co-dirigir",
		"coeditar":            "co-editar",
		"cofinanciar":         "co-financiar",
		"cogerir":             "co-gerir",
		"coincinerar":         "co-incinerar",
		"colitigar":           "co-litigar",
		"coobrigar":           "co-obrigar",
		"coparticipar":        "co-participar",
		"coproduzir":          "co-produzir",
		"corresponsabilizar":  "co-responsabilizar",
		"coatar":              "coactar",
		"coleccionar":         "colecionar",
		"concetualizar":       "conceptualizar",
		"confecionar":         "confeccionar",
		"contraindicar":       "contra-indicar",
		"contrainformar":      "contra-informar",
		"contraordenar":       "contra-ordenar",
		"contrarrevolucionar": "contra-revolucionar",
		"contrasselar":        "contra-selar",
		"dececionar":          "decepcionar",
		"delinquir":           "delinqüir",
		"deliquescer":         "deliqüescer",
		"desactivar":          "desativar",
		"desactualizar":       "desatualizar",
		"desarquitectar":      "desarquitetar",
		"desbaptizar":         "desbatizar",
		"desensanguentar":     "desensangüentar",
		"desfrequentar":       "desfreqüentar",
		"desmilinguir":        "desmilingüir",
		"difractar":           "difratar",
		"direccionar":         "direcionar",
		"efectivar":           "efetivar",
		"efectuar":            "efetuar",
		"ensanguentar":        "ensangüentar",
		"equidistar":          "eqüidistar",
		"equipoler":           "eqüipoler",
		"equiponderar":        "eqüiponderar",
		"exactificar":         "exatificar",
		"exiguificar":         "exigüificar",
		"facturar":            "faturar",
		"frequentar":          "freqüentar",
		"inactivar":           "inativar",
		"infraescapular":      "infra-escapular",
		"injectar":            "injetar",
		"inspeccionar":        "inspecionar",
		"inspectar":           "inspetar",
		"interactuar":         "interatuar",
		"intercetar":          "interceptar",
		"intersetar":          "intersectar",
		"jactar":              "jatar",
		"liquefazer":          "liqüefazer",
		"liquescer":           "liqüescer",
		"liquidar":            "liqüidar",
		"liquidificar":        "liqüidificar",
		"percecionar":         "percepcionar",
		"perfetibilizar":      "perfectibilizar",
		"preleccionar":        "prelecionar",
		"projectar":           "projetar",
		"reactivar":           "reativar",
		"reactualizar":        "reatualizar",
		"rebaptizar":          "rebatizar",
		"rececionar":          "recepcionar",
		"recetar":             "receptar",
		"redarguir":           "redargüir",
		"redireccionar":       "redirecionar",
		"reflectir":           "refletir",
		"relinquir":           "relinqüir",
		"retractar":           "retratar",
		"retroprojectar":      "retroprojetar",
		"sectorizar":          "setorizar",
		"seleccionar":         "selecionar",
		"selectar":            "seletar",
		"sequenciar":          "seqüenciar",
		"sequestrar":          "seqüestrar",
		"sobre-elevar":        "sobreelevar",
		"sobre-endividar":     "sobreendividar",
		"sobre-erguer":        "sobreerguer",
		"sobre-exaltar":       "sobreexaltar",
		"sobre-exceder":       "sobreexceder",
		"sobre-excitar":       "sobreexcitar",
		"sobre-expor":         "sobreexpor",
		"subjectivar":         "subjetivar",
		"subjectivizar":       "subjetivizar",
		"supraexcitar":        "supra-excitar",
		"teledetetar":         "teledetectar",
		"traccionar":          "tracionar",
		"tranquilizar":        "tranqüilizar",
		"transaccionar":       "transacionar",
		"ultrarromantizar":    "ultra-romantizar",
		"unguentar":           "ungüentar",
	},
	// European post-reform.
	EuropeanPostReform: {
		"accionar":            "acionar",
		"activar":             "ativar",
		"actualizar":          "atualizar",
		"actuar":              "atuar",
		"adjectivar":          "adjetivar",
		"adoptar":             "adotar",
		"afectar":             "afetar",
		"agro-alimentar":      "agroalimentar",
		"anti-sepsiar":        "antissepsiar",
		"argüir":              "arguir",
		"arquitectar":         "arquitetar",
		"auto-abastecer":      "autoabastecer",
		"auto-administrar":    "autoadministrar",
		"auto-excitar":        "autoexcitar",
		"auto-excluir":        "autoexcluir",
		"auto-sugestionar":    "autossugestionar",
		"auto-suspender":      "autossuspender",
		"baptizar":            "batizar",
		"circunspeccionar":    "circunspecionar",
		"co-administrar":      "coadministrar",
		"co-arrendar":         "coarrendar",
		"co-delinquir":        "codelinquir",
		"co-delinqüir":        "codelinquir",
		"co-dirigir":          "codirigir",
		"co-editar":           "coeditar",
		"co-financiar":        "cofinanciar",
		"co-gerir":            "cogerir",
		"co-incinerar":        "coincinerar",
		"co-litigar":          "colitigar",
		"co-obrigar":          "coobrigar",
		"co-participar":       "coparticipar",
		"co-produzir":         "coproduzir",
		"co-responsabilizar":  "corresponsabilizar",
		"coactar":             "coatar",
		"coarctar":            "coartar",
		"coleccionar":         "colecionar",
		"colectar":            "coletar",
		"colectivizar":        "coletivizar",
		"confeccionar":        "confecionar",
		"conjecturar":         "conjeturar",
		"contra-indicar":      "contraindicar",
		"contra-informar":     "contrainformar",
		"contra-ordenar":      "contraordenar",
		"contra-revolucionar": "contrarrevolucionar",
		"contra-selar":        "contrasselar",
		"decepcionar":         "dececionar",
		"dejectar":            "dejetar",
		"delinqüir":           "delinquir",
		"deliqüescer":         "deliquescer",
		"desactivar":          "desativar",
		"desactualizar":       "desatualizar",
		"desafectar":          "desafetar",
		"desarquitectar":      "desarquitetar",
		"desbaptizar":         "desbatizar",
		"deselectrizar":       "deseletrizar",
		"desensangüentar":     "desensanguentar",
		"desfreqüentar":       "desfrequentar",
		"desinfeccionar":      "desinfecionar",
		"desinfectar":         "desinfetar",
		"desmilingüir":        "desmilinguir",
		"detectar":            "detetar",
		"dialectizar":         "dialetizar",
		"difractar":           "difratar",
		"direccionar":         "direcionar",
		"efectivar":           "efetivar",
		"efectuar":            "efetuar",
		"ejectar":             "ejetar",
		"electrificar":        "eletrificar",
		"electrizar":          "eletrizar",
		"electrocutar":        "eletrocutar",
		"electrocutir":        "eletrocutir",
		"electrolisar":        "eletrolisar",
		"ensangüentar":        "ensanguentar",
		"eqüidistar":          "equidistar",
		"eqüipoler":           "equipoler",
		"eqüiponderar":        "equiponderar",
		"exactificar":         "exatificar",
		"excepcionar":         "excecionar",
		"exceptuar":           "excetuar",
		"exigüificar":         "exiguificar",
		"expectorar":          "expetorar",
		"extractar":           "extratar",
		"factorizar":          "fatorizar",
		"facturar":            "faturar",
		"flectir":             "fletir",
		"fraccionar":          "fracionar",
		"fracturar":           "fraturar",
		"freqüentar":          "frequentar",
		"genuflectir":         "genufletir",
		"inactivar":           "inativar",
		"infeccionar":         "infecionar",
		"infectar":            "infetar",
		"inflectir":           "infletir",
		"infra-escapular":     "infraescapular",
		"injectar":            "injetar",
		"inspeccionar":        "inspecionar",
		"inspectar":           "inspetar",
		"insurreccionar":      "insurrecionar",
		"interactuar":         "interatuar",
		"interceptar":         "intercetar",
		"interjeccionar":      "interjecionar",
		"invectivar":          "invetivar",
		"leccionar":           "lecionar",
		"liqüefazer":          "liquefazer",
		"liqüescer":           "liquescer",
		"liqüidar":            "liquidar",
		"liqüidificar":        "liquidificar",
		"manufacturar":        "manufaturar",
		"objectar":            "objetar",
		"objectivar":          "objetivar",
		"olfactar":            "olfatar",
		"optimizar":           "otimizar",
		"percepcionar":        "percecionar",
		"perspectivar":        "perspetivar",
		"preleccionar":        "prelecionar",
		"projectar":           "projetar",
		"prospectar":          "prospetar",
		"reactivar":           "reativar",
		"reactualizar":        "reatualizar",
		"readoptar":           "readotar",
		"rebaptizar":          "rebatizar",
		"recepcionar":         "rececionar",
		"receptar":            "recetar",
		"rectificar":          "retificar",
		"redargüir":           "redarguir",
		"redireccionar":       "redirecionar",
		"reflectir":           "refletir",
		"refractar":           "refratar",
		"relinqüir":           "relinquir",
		"retractar":           "retratar",
		"retroflectir":        "retrofletir",
		"retroprojectar":      "retroprojetar",
		"setorizar":           "sectorizar",
		"seleccionar":         "selecionar",
		"selectar":            "seletar",
		"seqüenciar":          "sequenciar",
		"seqüestrar":          "sequestrar",
		"sobreelevar":         "sobre-elevar",
		"sobreendividar":      "sobre-endividar",
		"sobreerguer":         "sobre-erguer",
		"sobreexaltar":        "sobre-exaltar",
		"sobreexceder":        "sobre-exceder",
		"sobreexcitar":        "sobre-excitar",
		"sobreexpor":          "sobre-expor",
		"subjectivar":         "subjetivar",
		"subjectivizar":       "subjetivizar",
		"supra-excitar":       "supraexcitar",
		"susceptibilizar":     "suscetibilizar",
		"tactear":             "tatear",
		"teledetectar":        "teledetetar",
		"traccionar":          "tracionar",
		"tranqüilizar":        "tranquilizar",
		"transaccionar":       "transacionar",
		"ultra-romantizar":    "ultrarromantizar",
		"ungüentar":           "unguentar",
		"vectorizar":          "vetorizar",
	},
	// European pre-reform.
	EuropeanPreReform: {
		"acionar":             "accionar",
		"ativar":              "activar",
		"atualizar":           "actualizar",
		"atuar":               "actuar",
		"adjetivar":           "adjectivar",
		"adotar":              "adoptar",
		"afetar":              "afectar",
		"agroalimentar":       "agro-alimentar",
		"amidalar":            "amigdalar",
		"anistiar":            "amnistiar",
		"antissepsiar":        "anti-sepsiar",
		"aquapunturar":        "aquapuncturar",
		"argüir":              "arguir",
		"arquitetar":          "arquitectar",
		"autoabastecer":       "auto-abastecer",
		"autoadministrar":     "auto-administrar",
		"autoexcitar":         "auto-excitar",
		"autoexcluir":         "auto-excluir",
		"autossugestionar":    "auto-sugestionar",
		"autossuspender":      "auto-suspender",
		"batizar":             "baptizar",
		"bissetar":            "bissectar",
		"caraterizar":         "caracterizar",
		"circunspecionar":     "circunspeccionar",
		"coadministrar":       "co-administrar",
		"coarrendar":          "co-arrendar",
		"codelinquir":         "co-delinquir",
		"co-delinqüir":        "co-delinquir",
		"codirigir":           "co-dirigir",
		"coeditar":            "co-editar",
		"cofinanciar":         "co-financiar",
		"cogerir":             "co-gerir",
		"coincinerar":         "co-incinerar",
		"colitigar":           "co-litigar",
		"coobrigar":           "co-obrigar",
		"coparticipar":        "co-participar",
		"coproduzir":          "co-produzir",
		"corresponsabilizar":  "co-responsabilizar",
		"coatar":              "coactar",
		"coartar":             "coarctar",
		"colecionar":          "coleccionar",
		"coletar":             "colectar",
		"coletivizar":         "colectivizar",
		"confecionar":         "confeccionar",
		"conjeturar":          "conjecturar",
		"contraindicar":       "contra-indicar",
		"contrainformar":      "contra-informar",
		"contraordenar":       "contra-ordenar",
		"contrarrevolucionar": "contra-revolucionar",
		"contrasselar":        "contra-selar",
		"datilar":             "dactilar",
		"datilografar":        "dactilografar",
		"dececionar":          "decepcionar",
		"defletir":            "deflectir",
		"dejetar":             "dejectar",
		"delinqüir":           "delinquir",
		"deliqüescer":         "deliquescer",
		"desativar":           "desactivar",
		"desatualizar":        "desactualizar",
		"desafetar":           "desafectar",
		"desarquitetar":       "desarquitectar",
		"desbatizar":          "desbaptizar",
		"descaraterizar":      "descaracterizar",
		"deseletrizar":        "deselectrizar",
		"desensangüentar":     "desensanguentar",
		"desfreqüentar":       "desfrequentar",
		"desinfecionar":       "desinfeccionar",
		"desinfetar":          "desinfectar",
		"desmilingüir":        "desmilinguir",
		"detetar":             "detectar",
		"dialetizar":          "dialectizar",
		"difratar":            "difractar",
		"direcionar":          "direccionar",
		"efetivar":            "efectivar",
		"efetuar":             "efectuar",
		"ejetar":              "ejectar",
		"eletrificar":         "electrificar",
		"eletrizar":           "electrizar",
		"eletrocutar":         "electrocutar",
		"eletrocutir":         "electrocutir",
		"eletrolisar":         "electrolisar",
		"ensangüentar":        "ensanguentar",
		"eqüidistar":          "equidistar",
		"eqüipoler":           "equipoler",
		"eqüiponderar":        "equiponderar",
		"exatificar":          "exactificar",
		"excecionar":          "excepcionar",
		"excetuar":            "exceptuar",
		"exigüificar":         "exiguificar",
		"expetorar":           "expectorar",
		"extratar":            "extractar",
		"facionar":            "faccionar",
		"fatorizar":           "factorizar",
		"faturar":             "facturar",
		"fletir":              "flectir",
		"fracionar":           "fraccionar",
		"fraturar":            "fracturar",
		"freqüentar":          "frequentar",
		"genufletir":          "genuflectir",
		"inativar":            "inactivar",
		"infecionar":          "infeccionar",
		"infetar":             "infectar",
		"infletir":            "inflectir",
		"infraescapular":      "infra-escapular",
		"injetar":             "injectar",
		"inspecionar":         "inspeccionar",
		"inspetar":            "inspectar",
		"insurrecionar":       "insurreccionar",
		"interatuar":          "interactuar",
		"intercetar":          "interceptar",
		"interjecionar":       "interjeccionar",
		"intersetar":          "intersectar",
		"invetivar":           "invectivar",
		"jatanciar":           "jactanciar",
		"jatar":               "jactar",
		"lecionar":            "leccionar",
		"liqüefazer":          "liquefazer",
		"liqüescer":           "liquescer",
		"liqüidar":            "liquidar",
		"liqüidificar":        "liquidificar",
		"manufaturar":         "manufacturar",
		"objetar":             "objectar",
		"objetivar":           "objectivar",
		"olfatar":             "olfactar",
		"otimizar":            "optimizar",
		"percecionar":         "percepcionar",
		"perfetibilizar":      "perfectibilizar",
		"perspetivar":         "perspectivar",
		"prelecionar":         "preleccionar",
		"projetar":            "projectar",
		"prospetar":           "prospectar",
		"reativar":            "reactivar",
		"reatualizar":         "reactualizar",
		"readotar":            "readoptar",
		"rebatizar":           "rebaptizar",
		"rececionar":          "recepcionar",
		"recetar":             "receptar",
		"retificar":           "rectificar",
		"redargüir":           "redarguir",
		"redirecionar":        "redireccionar",
		"refletir":            "reflectir",
		"refratar":            "refractar",
		"relinqüir":           "relinquir",
		"retratar":            "retractar",
		"retrofletir":         "retroflectir",
		"retroprojetar":       "retroprojectar",
		"secionar":            "seccionar",
		"setorizar":           "sectorizar",
		"selecionar":          "seleccionar",
		"seletar":             "selectar",
		"setuplicar":          "septuplicar",
		"seqüenciar":          "sequenciar",
		"seqüestrar":          "sequestrar",
		"sobre-elevar":        "sobreelevar",
		"sobre-endividar":     "sobreendividar",
		"sobre-erguer":        "sobreerguer",
		"sobre-exaltar":       "sobreexaltar",
		"sobre-exceder":       "sobreexceder",
		"sobre-excitar":       "sobreexcitar",
		"sobre-expor":         "sobreexpor",
		"subjetivar":          "subjectivar",
		"subjetivizar":        "subjectivizar",
		"sutilizar":           "subtilizar",
		"supraexcitar":        "supra-excitar",
		"suscetibilizar":      "susceptibilizar",
		"tatear":              "tactear",
		"teledetetar":         "teledetectar",
		"tracionar":           "traccionar",
		"tranqüilizar":        "tranquilizar",
		"transacionar":        "transaccionar",
		"ultrarromantizar":    "ultra-romantizar",
		"ungüentar":           "unguentar",
		"vetorizar":           "vectorizar",
		"volutuar":            "voluptuar",
	},
}
