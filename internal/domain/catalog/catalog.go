// Package catalog holds the static indicator and country catalogs.
//
// The catalogs are flat key-value data defined at startup and never
// mutated; lookups are case-sensitive on display names.
package catalog

// Source identifies the upstream statistical API an indicator comes from.
type Source string

// Known upstream sources.
const (
	SourceWHOGHO    Source = "WHO GHO"
	SourceWorldBank Source = "World Bank"
	SourceOECD      Source = "OECD"
)

// OECD dataset identifiers. Coverage indicators live in the health
// protection dataset; everything else in health statistics.
const (
	OECDDatasetHealthProtection = "OECD.ELS.HD,DSD_HEALTH_PROT@DF_HEALTH_PROT"
	OECDDatasetHealthStatistics = "OECD.ELS.HD,DSD_HEALTH_STAT@DF_HEALTH_STAT"
)

// Indicator maps a human-readable KPI name to a source-specific code.
// Dataset is only meaningful for OECD indicators: it names the SDMX
// dataset explicitly instead of inferring it from the display name.
type Indicator struct {
	Name    string `json:"name"`
	Code    string `json:"code"`
	Source  Source `json:"source"`
	Dataset string `json:"dataset,omitempty"`
}

// Sources returns the known sources in display order.
func Sources() []Source {
	return []Source{SourceWHOGHO, SourceWorldBank, SourceOECD}
}

var whoGHO = []Indicator{
	{Name: "% births attended by skilled health personnel", Code: "MDG_0000000025", Source: SourceWHOGHO},
	{Name: "DTP3 immunization coverage (%)", Code: "WHS4_100", Source: SourceWHOGHO},
	{Name: "Current health expenditure (% of GDP)", Code: "GHED_CHEGDP_SHA2011", Source: SourceWHOGHO},
	{Name: "Per capita health expenditure (USD)", Code: "GHED_CHE_pc_US_SHA2011", Source: SourceWHOGHO},
	{Name: "Out-of-pocket health spending (% of total)", Code: "SDGOOP", Source: SourceWHOGHO},
	{Name: "Domestic general government health expenditure (% of GDP)", Code: "GHED_GGHE-DCHE_SHA2011", Source: SourceWHOGHO},
	{Name: "Prevalence of overweight and obesity", Code: "EQ_OVERWEIGHTADULT", Source: SourceWHOGHO},
	{Name: "Raised blood pressure (age-standardized estimate)", Code: "BP_04", Source: SourceWHOGHO},
	{Name: "Age-standardized DALYs, diabetes mellitus, per 100,000", Code: "SA_0000001421", Source: SourceWHOGHO},
	{Name: "Life expectancy at birth (WHO)", Code: "WHOSIS_000001", Source: SourceWHOGHO},
}

var worldBank = []Indicator{
	{Name: "% population with access to basic sanitation", Code: "SH.STA.BASS.ZS", Source: SourceWorldBank},
	{Name: "Life expectancy at birth", Code: "SP.DYN.LE00.IN", Source: SourceWorldBank},
	{Name: "Under-5 mortality rate (per 1,000)", Code: "SH.DYN.MORT", Source: SourceWorldBank},
	{Name: "Maternal mortality ratio (per 100,000)", Code: "SH.STA.MMRT", Source: SourceWorldBank},
	{Name: "Infant mortality rate (per 1,000)", Code: "SP.DYN.IMRT.IN", Source: SourceWorldBank},
	{Name: "Neonatal mortality rate", Code: "SH.DYN.NMRT", Source: SourceWorldBank},
	{Name: "Suicide mortality rate", Code: "SH.STA.SUIC.P5", Source: SourceWorldBank},
}

var oecd = []Indicator{
	{Name: "Unmet need for medical care (% reporting delay or avoidance)", Code: "UNMET_NEED_MED_CARE", Source: SourceOECD, Dataset: OECDDatasetHealthStatistics},
	{Name: "% population with health insurance", Code: "HEALTH_INSURANCE_COV", Source: SourceOECD, Dataset: OECDDatasetHealthProtection},
	{Name: "Expenditure on pharmaceuticals per capita", Code: "PHARM_EXP_PC_USD", Source: SourceOECD, Dataset: OECDDatasetHealthStatistics},
	{Name: "Expenditure on inpatient care (% of total)", Code: "INPATIENT_CARE_SHARE", Source: SourceOECD, Dataset: OECDDatasetHealthStatistics},
	{Name: "Preventive care spending (% of total health spending)", Code: "PREVENT_CARE_SHARE", Source: SourceOECD, Dataset: OECDDatasetHealthStatistics},
	{Name: "ICU beds per 100,000 (select countries)", Code: "ICU_BEDS_PER_100K", Source: SourceOECD, Dataset: OECDDatasetHealthStatistics},
	{Name: "Medical technology density (MRI/CT scanners per million)", Code: "MED_TECH_DENSITY", Source: SourceOECD, Dataset: OECDDatasetHealthStatistics},
	{Name: "Hospital beds by function of healthcare", Code: "HOSP_BEDS_FUNC", Source: SourceOECD, Dataset: OECDDatasetHealthStatistics},
}

// Indicators returns every catalog entry, grouped by source in display order.
func Indicators() []Indicator {
	out := make([]Indicator, 0, len(whoGHO)+len(worldBank)+len(oecd))
	out = append(out, whoGHO...)
	out = append(out, worldBank...)
	out = append(out, oecd...)
	return out
}

// BySource returns the catalog entries for one source, in display order.
func BySource(src Source) []Indicator {
	var group []Indicator
	switch src {
	case SourceWHOGHO:
		group = whoGHO
	case SourceWorldBank:
		group = worldBank
	case SourceOECD:
		group = oecd
	default:
		return nil
	}
	out := make([]Indicator, len(group))
	copy(out, group)
	return out
}

// Find looks up an indicator by its display name.
func Find(name string) (Indicator, bool) {
	for _, ind := range Indicators() {
		if ind.Name == name {
			return ind, true
		}
	}
	return Indicator{}, false
}
