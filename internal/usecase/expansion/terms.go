package expansion

// Domain term maps. Keys are matched case-insensitively as substrings of
// the incoming query; values are the related terms appended to the
// broadened query text.

var cancerTypeTerms = map[string][]string{
	"NSCLC": {
		"non-small cell lung cancer", "lung adenocarcinoma",
		"lung squamous cell", "EGFR-mutant lung", "ALK-positive lung",
	},
	"SCLC": {
		"small cell lung cancer", "neuroendocrine lung",
		"extensive-stage SCLC", "limited-stage SCLC", "ES-SCLC",
	},
	"CRC": {
		"colorectal cancer", "colon cancer", "rectal cancer",
		"metastatic colorectal", "mCRC", "left-sided colon",
	},
	"HCC": {
		"hepatocellular carcinoma", "liver cancer",
		"hepatobiliary", "fibrolamellar HCC", "Child-Pugh",
	},
	"TNBC": {
		"triple-negative breast cancer", "basal-like breast",
		"ER-negative PR-negative HER2-negative", "BRCA-mutant breast", "TNBC subtype",
	},
	"AML": {
		"acute myeloid leukemia", "FLT3-mutant AML",
		"NPM1-mutant AML", "IDH-mutant AML", "secondary AML",
	},
	"melanoma": {
		"cutaneous melanoma", "BRAF-mutant melanoma", "uveal melanoma",
		"acral melanoma", "mucosal melanoma", "metastatic melanoma",
	},
	"GBM": {
		"glioblastoma multiforme", "high-grade glioma",
		"IDH-wildtype glioblastoma", "MGMT-methylated GBM", "brain tumor",
	},
	"RCC": {
		"renal cell carcinoma", "clear cell RCC", "papillary RCC",
		"chromophobe RCC", "kidney cancer", "metastatic RCC",
	},
	"PDAC": {
		"pancreatic ductal adenocarcinoma", "pancreatic cancer",
		"KRAS-mutant pancreatic", "metastatic pancreatic",
		"borderline resectable pancreatic",
	},
}

var geneTerms = map[string][]string{
	"EGFR": {
		"epidermal growth factor receptor", "EGFR L858R",
		"EGFR exon 19 deletion", "EGFR T790M", "EGFR C797S",
	},
	"KRAS": {
		"Kirsten rat sarcoma", "KRAS G12C", "KRAS G12D",
		"KRAS G12V", "KRAS amplification",
	},
	"BRAF": {
		"B-Raf proto-oncogene", "BRAF V600E", "BRAF V600K",
		"BRAF class I mutation", "BRAF fusion",
	},
	"ALK": {
		"anaplastic lymphoma kinase", "EML4-ALK",
		"ALK rearrangement", "ALK fusion", "ALK amplification",
	},
	"TP53": {
		"tumor protein p53", "p53 loss-of-function",
		"TP53 missense mutation", "TP53 deletion", "Li-Fraumeni",
	},
	"BRCA1": {
		"breast cancer gene 1", "BRCA1 germline mutation",
		"BRCA1 somatic mutation", "homologous recombination deficient",
		"PARP inhibitor sensitivity",
	},
	"BRCA2": {
		"breast cancer gene 2", "BRCA2 germline mutation",
		"BRCA2 frameshift", "Fanconi anemia pathway",
		"HRD-positive", "BRCA2 reversion mutation",
	},
	"PIK3CA": {
		"phosphatidylinositol 3-kinase catalytic subunit alpha",
		"PIK3CA H1047R", "PIK3CA E545K", "PI3K pathway",
		"PI3K inhibitor sensitivity",
	},
	"MET": {
		"mesenchymal-epithelial transition factor", "MET exon 14 skipping",
		"MET amplification", "MET overexpression", "c-MET",
	},
	"RET": {
		"rearranged during transfection", "RET fusion",
		"RET M918T", "RET inhibitor", "KIF5B-RET",
	},
}

var therapyTerms = map[string][]string{
	"osimertinib": {
		"Tagrisso", "EGFR TKI", "third-generation EGFR inhibitor",
		"FLAURA", "FLAURA2",
	},
	"sotorasib": {
		"Lumakras", "KRAS G12C inhibitor", "AMG 510",
		"CodeBreaK 200", "covalent KRAS inhibitor",
	},
	"pembrolizumab": {
		"Keytruda", "anti-PD-1", "checkpoint inhibitor",
		"KEYNOTE trials", "PD-1 blockade",
	},
	"trastuzumab": {
		"Herceptin", "anti-HER2", "HER2-targeted therapy",
		"trastuzumab deruxtecan", "T-DXd",
	},
	"olaparib": {
		"Lynparza", "PARP inhibitor", "PARPi",
		"synthetic lethality", "BRCA-directed therapy",
	},
	"nivolumab": {
		"Opdivo", "anti-PD-1", "immune checkpoint inhibitor",
		"CheckMate trials", "PD-1 antibody",
	},
	"dabrafenib": {
		"Tafinlar", "BRAF inhibitor", "BRAF V600E inhibitor",
		"dabrafenib-trametinib combination", "COMBI-d",
	},
	"venetoclax": {
		"Venclexta", "BCL-2 inhibitor", "BH3 mimetic",
		"venetoclax-obinutuzumab", "VIALE-A",
	},
	"lorlatinib": {
		"Lorbrena", "third-generation ALK inhibitor",
		"ALK TKI", "CROWN trial", "ALK-positive NSCLC treatment",
	},
	"encorafenib": {
		"Braftovi", "BRAF inhibitor", "encorafenib-cetuximab",
		"BEACON CRC", "RAF inhibitor",
	},
}

var biomarkerTerms = map[string][]string{
	"MSI-H": {
		"microsatellite instability high", "mismatch repair deficient",
		"dMMR", "MLH1 loss", "immunotherapy biomarker",
	},
	"TMB": {
		"tumor mutational burden", "TMB-high",
		"mutations per megabase", "hypermutated", "neoantigen load",
	},
	"PD-L1": {
		"programmed death-ligand 1", "TPS score",
		"CPS score", "PD-L1 IHC 22C3", "PD-L1 expression",
	},
	"HRD": {
		"homologous recombination deficiency", "HRD score",
		"genomic instability score", "LOH", "BRCA-ness",
	},
	"HER2": {
		"human epidermal growth factor receptor 2", "ERBB2",
		"HER2-positive", "HER2-low", "HER2 amplification",
	},
	"ALK rearrangement": {
		"ALK fusion", "EML4-ALK", "ALK FISH-positive",
		"ALK IHC", "ALK break-apart",
	},
	"NTRK fusion": {
		"neurotrophic receptor tyrosine kinase fusion",
		"pan-TRK IHC", "NTRK1 fusion", "NTRK2 fusion", "NTRK3 fusion",
		"larotrectinib biomarker",
	},
	"ctDNA": {
		"circulating tumor DNA", "liquid biopsy",
		"cell-free DNA", "cfDNA", "minimal residual disease",
		"molecular residual disease",
	},
	"FGFR alteration": {
		"fibroblast growth factor receptor", "FGFR2 fusion",
		"FGFR3 mutation", "FGFR amplification",
		"FGFR inhibitor sensitivity",
	},
	"ROS1": {
		"ROS proto-oncogene 1", "ROS1 fusion",
		"ROS1 rearrangement", "CD74-ROS1", "crizotinib biomarker",
	},
}

var pathwayTerms = map[string][]string{
	"MAPK": {
		"RAS-RAF-MEK-ERK", "MAPK cascade", "MAPK pathway",
		"ERK signaling", "RAS signaling",
	},
	"PI3K/AKT/mTOR": {
		"PI3K pathway", "AKT signaling", "mTOR signaling",
		"PTEN loss", "PI3K-AKT-mTOR axis",
	},
	"Wnt": {
		"Wnt/beta-catenin", "canonical Wnt pathway",
		"APC mutation", "CTNNB1 signaling", "Wnt target genes",
	},
	"Hedgehog": {
		"Hedgehog signaling pathway", "SHH pathway",
		"SMO inhibitor", "GLI activation", "Patched receptor",
	},
	"Notch": {
		"Notch signaling", "Notch1 activation",
		"gamma-secretase", "DLL3 ligand", "Notch pathway crosstalk",
	},
	"JAK/STAT": {
		"Janus kinase", "STAT signaling",
		"JAK2 V617F", "cytokine signaling", "JAK inhibitor",
	},
	"DNA damage repair": {
		"DDR pathway", "homologous recombination",
		"non-homologous end joining", "base excision repair",
		"mismatch repair", "PARP dependency",
	},
	"angiogenesis": {
		"VEGF signaling", "VEGFR pathway",
		"HIF-1 alpha", "anti-angiogenic", "tumor vasculature",
	},
	"cell cycle": {
		"CDK4/6", "RB pathway", "cyclin D1",
		"G1/S checkpoint", "cell cycle arrest",
	},
	"apoptosis": {
		"programmed cell death", "BCL-2 family",
		"caspase activation", "BH3 mimetic", "intrinsic apoptosis pathway",
	},
}

var resistanceTerms = map[string][]string{
	"resistance": {
		"acquired resistance", "secondary mutations",
		"bypass pathway", "treatment failure", "dose escalation",
	},
	"EGFR resistance": {
		"T790M gatekeeper mutation", "C797S mutation",
		"MET amplification bypass", "HER2 amplification bypass",
		"small cell transformation",
	},
	"ALK resistance": {
		"ALK solvent-front mutation", "ALK G1202R",
		"ALK compound mutations", "ALK L1196M gatekeeper",
		"ALK resistance cascade",
	},
	"BRAF resistance": {
		"MAPK reactivation", "NRAS mutation",
		"MEK1 mutation", "BRAF amplification",
		"ERK pathway feedback",
	},
	"immunotherapy resistance": {
		"immune escape", "antigen presentation loss",
		"beta-2-microglobulin loss", "JAK1/2 mutation",
		"T cell exhaustion", "cold tumor",
	},
	"chemotherapy resistance": {
		"multidrug resistance", "P-glycoprotein",
		"DNA repair upregulation", "efflux pump",
		"apoptosis evasion",
	},
	"endocrine resistance": {
		"ESR1 mutation", "ER-independent growth",
		"CDK4/6 inhibitor resistance", "PI3K activation",
		"hormone receptor loss",
	},
	"PARP inhibitor resistance": {
		"BRCA reversion mutation", "53BP1 loss",
		"HR restoration", "drug efflux", "PARP1 mutation",
	},
	"anti-HER2 resistance": {
		"HER2 truncation", "p95-HER2",
		"PI3K pathway activation", "HER3 upregulation",
		"trastuzumab resistance",
	},
	"targeted therapy resistance": {
		"on-target resistance", "off-target resistance",
		"lineage plasticity", "phenotypic switching",
		"tumor heterogeneity",
	},
}

var clinicalTerms = map[string][]string{
	"response": {
		"overall response rate", "ORR",
		"complete response", "partial response", "RECIST criteria",
	},
	"survival": {
		"overall survival", "OS", "progression-free survival",
		"PFS", "disease-free survival", "DFS",
	},
	"staging": {
		"TNM staging", "AJCC staging",
		"stage IV", "metastatic", "locally advanced",
	},
	"performance status": {
		"ECOG PS", "Karnofsky performance",
		"ECOG 0-1", "functional status", "patient fitness",
	},
	"progression": {
		"disease progression", "progressive disease",
		"RECIST progression", "radiographic progression",
		"clinical deterioration",
	},
	"remission": {
		"complete remission", "partial remission",
		"minimal residual disease negative", "MRD-negative",
		"deep molecular response",
	},
	"relapse": {
		"disease relapse", "recurrence", "refractory disease",
		"relapsed/refractory", "second-line therapy",
	},
	"prognosis": {
		"prognostic factor", "risk stratification",
		"favorable prognosis", "poor prognosis", "survival prediction",
	},
	"comorbidity": {
		"comorbid conditions", "Charlson comorbidity index",
		"organ dysfunction", "renal impairment",
		"hepatic impairment", "cardiac comorbidity",
	},
	"molecular profiling": {
		"comprehensive genomic profiling", "CGP",
		"FoundationOne", "Tempus xT", "MSK-IMPACT",
		"tumor molecular testing",
	},
}

var trialTerms = map[string][]string{
	"clinical trial": {
		"phase III", "randomized controlled",
		"progression-free survival", "overall survival", "enrollment",
	},
	"phase I": {
		"dose escalation", "first-in-human",
		"maximum tolerated dose", "dose-finding", "safety run-in",
	},
	"phase II": {
		"signal-finding", "expansion cohort",
		"single-arm trial", "Simon two-stage",
		"objective response rate endpoint",
	},
	"phase III": {
		"pivotal trial", "registration trial",
		"randomized controlled trial", "primary endpoint PFS",
		"superiority design",
	},
	"basket trial": {
		"histology-agnostic", "biomarker-selected",
		"tissue-agnostic", "tumor-agnostic", "master protocol",
	},
	"umbrella trial": {
		"biomarker-driven", "multi-arm trial",
		"adaptive platform", "molecular cohort",
		"precision medicine trial",
	},
	"real-world evidence": {
		"RWE", "real-world data", "retrospective cohort",
		"electronic health records", "claims data analysis",
	},
	"endpoint": {
		"primary endpoint", "secondary endpoint",
		"surrogate endpoint", "composite endpoint",
		"time-to-event endpoint",
	},
	"eligibility": {
		"inclusion criteria", "exclusion criteria",
		"prior lines of therapy", "measurable disease",
		"brain metastases allowed",
	},
	"randomization": {
		"stratification", "1:1 randomization",
		"crossover allowed", "intent-to-treat",
		"per-protocol population",
	},
}

var immunotherapyTerms = map[string][]string{
	"immunotherapy": {
		"checkpoint inhibitor", "anti-PD-1", "anti-PD-L1",
		"anti-CTLA-4", "immune checkpoint blockade",
	},
	"CAR-T": {
		"chimeric antigen receptor T-cell", "CAR-T cell therapy",
		"adoptive cell therapy", "autologous CAR-T",
		"CD19-directed CAR-T",
	},
	"bispecific": {
		"bispecific antibody", "bispecific T-cell engager",
		"BiTE", "dual-target immunotherapy",
		"T-cell redirecting antibody",
	},
	"TIL therapy": {
		"tumor-infiltrating lymphocyte", "lifileucel",
		"adoptive TIL transfer", "ex vivo TIL expansion",
		"TIL-based immunotherapy",
	},
	"cancer vaccine": {
		"neoantigen vaccine", "mRNA cancer vaccine",
		"dendritic cell vaccine", "personalized vaccine",
		"tumor-associated antigen",
	},
	"combination immunotherapy": {
		"ipilimumab-nivolumab", "dual checkpoint blockade",
		"PD-1 plus CTLA-4", "chemo-immunotherapy",
		"IO combination",
	},
	"immune microenvironment": {
		"tumor immune microenvironment", "TIME",
		"hot tumor", "cold tumor", "immune desert",
		"immune-inflamed",
	},
	"cytokine therapy": {
		"interleukin-2", "IL-2", "interferon-alpha",
		"high-dose IL-2", "cytokine storm",
	},
	"ADC": {
		"antibody-drug conjugate", "trastuzumab deruxtecan",
		"sacituzumab govitecan", "enfortumab vedotin",
		"payload-linker technology",
	},
	"oncolytic virus": {
		"oncolytic virotherapy", "T-VEC", "talimogene laherparepvec",
		"viral immunotherapy", "tumor-selective replication",
	},
}

var surgeryRadiationTerms = map[string][]string{
	"neoadjuvant": {
		"preoperative", "before surgery", "downstaging",
		"pathologic complete response", "pCR",
	},
	"adjuvant": {
		"postoperative", "after surgery", "adjuvant chemotherapy",
		"adjuvant immunotherapy", "risk reduction",
	},
	"radiation": {
		"radiotherapy", "external beam radiation", "EBRT",
		"intensity-modulated radiation therapy", "IMRT",
	},
	"stereotactic": {
		"SBRT", "stereotactic body radiotherapy",
		"SRS", "stereotactic radiosurgery", "CyberKnife",
	},
	"proton therapy": {
		"proton beam therapy", "particle therapy",
		"Bragg peak", "pencil beam scanning",
		"proton vs photon",
	},
	"surgery": {
		"surgical resection", "curative resection",
		"R0 resection", "margin status",
		"minimally invasive surgery",
	},
	"chemoradiation": {
		"concurrent chemoradiation", "chemoRT",
		"radiosensitization", "definitive chemoradiation",
		"sequential chemoradiation",
	},
	"brachytherapy": {
		"internal radiation", "interstitial brachytherapy",
		"intracavitary brachytherapy", "high-dose rate",
		"HDR brachytherapy",
	},
	"ablation": {
		"radiofrequency ablation", "RFA", "microwave ablation",
		"cryoablation", "thermal ablation",
	},
	"perioperative": {
		"perioperative therapy", "perioperative chemotherapy",
		"perioperative immunotherapy", "sandwich approach",
		"total neoadjuvant therapy", "TNT",
	},
}

var toxicityTerms = map[string][]string{
	"side effects": {
		"adverse events", "dose-limiting toxicity",
		"grade 3-4", "treatment discontinuation",
		"immune-related adverse events",
	},
	"irAE": {
		"immune-related adverse event", "checkpoint toxicity",
		"autoimmune toxicity", "irAE management",
		"steroid taper", "immunosuppression",
	},
	"hepatotoxicity": {
		"liver toxicity", "transaminase elevation",
		"drug-induced liver injury", "ALT/AST elevation",
		"hepatic failure",
	},
	"cardiotoxicity": {
		"cardiac toxicity", "QTc prolongation",
		"left ventricular dysfunction", "ejection fraction decrease",
		"myocarditis",
	},
	"nephrotoxicity": {
		"renal toxicity", "creatinine elevation",
		"acute kidney injury", "proteinuria",
		"renal dose adjustment",
	},
	"dermatologic toxicity": {
		"rash", "hand-foot syndrome", "acneiform rash",
		"Stevens-Johnson syndrome", "skin toxicity",
	},
	"neurotoxicity": {
		"peripheral neuropathy", "CNS toxicity",
		"immune effector cell-associated neurotoxicity syndrome",
		"ICANS", "encephalopathy",
	},
	"myelosuppression": {
		"neutropenia", "thrombocytopenia", "anemia",
		"febrile neutropenia", "bone marrow suppression",
		"G-CSF support",
	},
	"GI toxicity": {
		"diarrhea", "colitis", "nausea and vomiting",
		"mucositis", "immune-mediated colitis",
	},
	"pneumonitis": {
		"drug-induced pneumonitis", "interstitial lung disease",
		"immune-mediated pneumonitis", "radiation pneumonitis",
		"checkpoint pneumonitis",
	},
}

var genomicsTerms = map[string][]string{
	"sequencing": {
		"next-generation sequencing", "NGS",
		"whole exome", "targeted panel", "liquid biopsy", "ctDNA",
	},
	"WGS": {
		"whole genome sequencing", "germline WGS",
		"tumor-normal WGS", "structural variant detection",
		"copy number analysis",
	},
	"RNA-seq": {
		"RNA sequencing", "transcriptome profiling",
		"gene expression", "fusion detection",
		"differential expression",
	},
	"single-cell": {
		"single-cell sequencing", "scRNA-seq",
		"single-cell ATAC-seq", "tumor heterogeneity",
		"clonal architecture",
	},
	"variant calling": {
		"somatic variant calling", "germline variant calling",
		"variant allele frequency", "VAF",
		"tumor purity", "clonality",
	},
	"copy number": {
		"copy number alteration", "CNA",
		"gene amplification", "homozygous deletion",
		"chromosomal instability",
	},
	"epigenomics": {
		"DNA methylation", "histone modification",
		"ATAC-seq", "chromatin accessibility",
		"epigenetic silencing",
	},
	"proteomics": {
		"mass spectrometry", "protein expression",
		"phosphoproteomics", "RPPA", "IHC quantification",
	},
	"spatial omics": {
		"spatial transcriptomics", "Visium", "MERFISH",
		"spatial proteomics", "multiplexed imaging",
	},
	"multi-omics": {
		"multi-omic integration", "genomics-transcriptomics",
		"integrated molecular profiling", "TCGA",
		"pan-cancer atlas",
	},
}
