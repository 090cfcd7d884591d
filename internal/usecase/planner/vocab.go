package planner

// Closed vocabularies for entity extraction. Genes and cancer types are
// matched as exact substrings of the uppercased question; aliases are
// matched against the lowercased question and resolved to canonical
// cancer types.

var knownGenes = []string{
	"BRAF", "EGFR", "ALK", "ROS1", "KRAS", "HER2",
	"NTRK", "RET", "MET", "FGFR", "PIK3CA", "IDH1",
	"IDH2", "BRCA1", "BRCA2", "BRCA", "TP53", "PTEN", "CDKN2A",
	"STK11", "ESR1", "ERBB2", "NRAS", "APC", "VHL",
	"KIT", "PDGFRA", "FLT3", "NPM1", "DNMT3A",
}

var knownCancerTypes = []string{
	"NSCLC", "BREAST", "MELANOMA", "COLORECTAL", "PANCREATIC",
	"OVARIAN", "PROSTATE", "GLIOBLASTOMA", "GLIOMA", "AML",
	"CML", "CLL", "DLBCL", "BLADDER", "RENAL", "HEPATOCELLULAR",
	"GASTRIC", "ESOPHAGEAL", "THYROID", "ENDOMETRIAL", "CERVICAL",
	"HEAD_AND_NECK", "SARCOMA", "CHOLANGIOCARCINOMA", "MESOTHELIOMA",
}

type alias struct {
	text      string
	canonical string
}

var cancerAliases = []alias{
	{"non-small cell lung", "NSCLC"},
	{"non small cell lung", "NSCLC"},
	{"lung adenocarcinoma", "NSCLC"},
	{"small cell lung", "SCLC"},
	{"sclc", "SCLC"},
	{"nsclc", "NSCLC"},
	{"lung cancer", "NSCLC"},
	{"lung", "NSCLC"},
	{"triple negative breast", "BREAST"},
	{"breast cancer", "BREAST"},
	{"breast", "BREAST"},
	{"tnbc", "BREAST"},
	{"colorectal cancer", "COLORECTAL"},
	{"colon cancer", "COLORECTAL"},
	{"rectal cancer", "COLORECTAL"},
	{"colon", "COLORECTAL"},
	{"crc", "COLORECTAL"},
	{"cutaneous melanoma", "MELANOMA"},
	{"skin cancer", "MELANOMA"},
	{"melanoma", "MELANOMA"},
	{"pancreatic cancer", "PANCREATIC"},
	{"pancreatic", "PANCREATIC"},
	{"pdac", "PANCREATIC"},
	{"ovarian cancer", "OVARIAN"},
	{"ovarian", "OVARIAN"},
	{"prostate cancer", "PROSTATE"},
	{"prostate", "PROSTATE"},
	{"crpc", "PROSTATE"},
	{"glioblastoma", "GLIOBLASTOMA"},
	{"glioma", "GLIOMA"},
	{"gbm", "GLIOBLASTOMA"},
	{"acute myeloid leukemia", "AML"},
	{"acute myeloid", "AML"},
	{"aml", "AML"},
	{"chronic myeloid leukemia", "CML"},
	{"chronic myeloid", "CML"},
	{"cml", "CML"},
	{"chronic lymphocytic leukemia", "CLL"},
	{"cll", "CLL"},
	{"bladder cancer", "BLADDER"},
	{"urothelial", "BLADDER"},
	{"bladder", "BLADDER"},
	{"kidney cancer", "RENAL"},
	{"kidney", "RENAL"},
	{"renal", "RENAL"},
	{"rcc", "RENAL"},
	{"hepatocellular carcinoma", "HEPATOCELLULAR"},
	{"liver cancer", "HEPATOCELLULAR"},
	{"liver", "HEPATOCELLULAR"},
	{"hcc", "HEPATOCELLULAR"},
	{"stomach cancer", "GASTRIC"},
	{"gastric cancer", "GASTRIC"},
	{"stomach", "GASTRIC"},
	{"gastric", "GASTRIC"},
	{"thyroid cancer", "THYROID"},
	{"thyroid", "THYROID"},
	{"endometrial cancer", "ENDOMETRIAL"},
	{"endometrial", "ENDOMETRIAL"},
	{"uterine", "ENDOMETRIAL"},
	{"sarcoma", "SARCOMA"},
	{"esophageal cancer", "ESOPHAGEAL"},
	{"esophageal", "ESOPHAGEAL"},
	{"cholangiocarcinoma", "CHOLANGIOCARCINOMA"},
	{"bile duct cancer", "CHOLANGIOCARCINOMA"},
	{"head and neck", "HEAD_AND_NECK"},
	{"hnscc", "HEAD_AND_NECK"},
	{"cervical cancer", "CERVICAL"},
	{"cervical", "CERVICAL"},
	{"mesothelioma", "MESOTHELIOMA"},
}

type topicKeyword struct {
	keyword string
	topic   string
}

// Topic labels drive sub-question decomposition; keys are matched as
// lowercase substrings in declaration order.
var topicKeywords = []topicKeyword{
	{"resistance", "therapeutic resistance"},
	{"biomarker", "biomarker identification"},
	{"prognosis", "prognostic significance"},
	{"survival", "survival outcomes"},
	{"immunotherapy", "immunotherapy response"},
	{"targeted therapy", "targeted therapy"},
	{"clinical trial", "clinical trials"},
	{"combination", "combination therapy"},
	{"mutation", "mutation landscape"},
	{"variant", "variant interpretation"},
	{"expression", "gene expression"},
	{"amplification", "gene amplification"},
	{"fusion", "gene fusion"},
	{"methylation", "epigenetic regulation"},
	{"liquid biopsy", "liquid biopsy / ctDNA"},
	{"ctdna", "liquid biopsy / ctDNA"},
	{"pd-l1", "PD-L1 / immune checkpoint"},
	{"pdl1", "PD-L1 / immune checkpoint"},
	{"checkpoint", "PD-L1 / immune checkpoint"},
	{"tumor mutational burden", "TMB"},
	{"tmb", "TMB"},
	{"microsatellite", "MSI / microsatellite instability"},
	{"msi", "MSI / microsatellite instability"},
}

// Topic labels referenced by the decomposer.
const (
	topicResistance  = "therapeutic resistance"
	topicTrials      = "clinical trials"
	topicBiomarker   = "biomarker identification"
	topicCombination = "combination therapy"
)

var comparativeSignals = []string{
	"compare", "vs", "versus", "difference between", "head to head",
}
