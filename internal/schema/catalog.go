package schema

// Section headings, in report order.
const (
	PatientInfoHeading  = "Patient Information"
	LVDimensionsHeading = "LV Dimensions and Systolic Assessment"
	DiastolicHeading    = "LV Diastolic Function Assessment"
	ChamberHeading      = "Chamber Dimensions and Function"
	MitralHeading       = "Mitral Valve Assessment"
	AorticHeading       = "Aortic Valve Assessment"
	TricuspidHeading    = "Tricuspid Valve Assessment"
	PulmonaryHeading    = "Pulmonary Valve Assessment"
	SeptalHeading       = "Septal Assessment"
	SummaryHeading      = "Report Summary and Recommendations"
)

// Indication options that switch conditional patient-info fields on.
const (
	InterventionOption = "3. Post cardiac intervention (CABG, ASD D/C, PTMC)"
	PreOpOption        = "4. Pre operative assessment"
)

var effusionOptions = []string{
	"2. Thin rim of pericardial effusion",
	"3. Mild pericardial effusion",
	"4. Moderate pericardial effusion",
	"5. Cardiac tamponade",
}

var mrPresent = []string{"2. Trivial", "3. Mild", "4. Moderate", "5. Severe"}
var msPresent = []string{"2. Mild", "3. Moderate", "4. Tight"}
var arPresent = []string{"2. Mild", "3. Moderate", "4. Severe"}
var asPresent = []string{"2. Mild", "3. Moderate", "4. Severe"}
var trPresent = []string{"2. Mild", "3. Moderate", "4. Severe", "5. Massive", "6. Torrential"}
var psPresent = []string{"2. Mild", "3. Moderate", "4. Severe"}

// Default is the echocardiogram report catalog. Field order here is display
// order everywhere: the form, the template model and the printed report.
var Default = MustNew([]FieldDefinition{
	// Patient information
	{Name: "Name", Label: "Patient Name", Kind: KindText, Section: PatientInfoHeading, Placeholder: "Enter full name"},
	{Name: "ID", Label: "Clinic ID", Kind: KindText, Section: PatientInfoHeading, Placeholder: "Enter clinic ID or number"},
	{Name: "DOB", Label: "Date of Birth", Kind: KindDate, Section: PatientInfoHeading},
	{Name: "Age", Label: "Age", Kind: KindNumber, Section: PatientInfoHeading, ReadOnly: true, Tooltip: "Autofilled from DOB."},
	{Name: "Indication", Label: "Indication", Kind: KindSelect, Section: PatientInfoHeading, Choices: []string{
		"1. Assessment of cardiac function for ischaemic heart disease",
		"2. Assessment of valvular heart disease",
		InterventionOption,
		PreOpOption,
	}},
	{Name: "Date of Intervention", Label: "Date of Intervention", Kind: KindDate, Section: PatientInfoHeading,
		Visibility: When("Indication", InterventionOption)},
	{Name: "Pre-Op Specify", Label: "Pre-Op Specify", Kind: KindText, Section: PatientInfoHeading, Placeholder: "Specify pre-operative assessment details",
		Visibility: When("Indication", PreOpOption)},

	// LV dimensions and systolic assessment
	{Name: "LV EDD", Label: "LV EDD", Kind: KindNumber, Section: LVDimensionsHeading, Unit: "mm"},
	{Name: "LV ESD", Label: "LV ESD", Kind: KindNumber, Section: LVDimensionsHeading, Unit: "mm"},
	{Name: "IVSd", Label: "IVSd", Kind: KindNumber, Section: LVDimensionsHeading, Unit: "mm"},
	{Name: "pwD", Label: "LVPWd", Kind: KindNumber, Section: LVDimensionsHeading, Unit: "mm"},
	{Name: "EF", Label: "EF", Kind: KindNumber, Section: LVDimensionsHeading, Unit: "%"},
	{Name: "RWMA", Label: "RWMA", Kind: KindSelect, Section: LVDimensionsHeading, Choices: []string{
		"None", "Anterior", "Septal", "Lateral", "Apical", "Inferior", "Posterior", "Basal"}},
	{Name: "LV cavity", Label: "LV cavity", Kind: KindSelect, Section: LVDimensionsHeading, Choices: []string{
		"Normal size", "Dilated", "Concentric LVH", "Asymmetric septal/apical hypertrophy", "Other"}},
	{Name: "Systolic Comment", Label: "LV Systolic Function Comment", Kind: KindSelect, Section: LVDimensionsHeading, Choices: []string{
		"1. Good LV systolic function", "2. Mildly reduced LV systolic function",
		"3. Moderately reduced LV systolic function", "4. Severely reduced LV systolic function"}},

	// LV diastolic function assessment
	{Name: "E", Label: "E", Kind: KindNumber, Section: DiastolicHeading, Unit: "cm/s"},
	{Name: "A", Label: "A", Kind: KindNumber, Section: DiastolicHeading, Unit: "cm/s"},
	{Name: "E/A ratio", Label: "E/A ratio", Kind: KindNumber, Section: DiastolicHeading},
	{Name: "Medial wall e'", Label: "Medial wall e'", Kind: KindNumber, Section: DiastolicHeading, Unit: "cm/s"},
	{Name: "E/e'", Label: "E/e'", Kind: KindNumber, Section: DiastolicHeading},
	{Name: "Diastolic Comment", Label: "LV Diastolic Function Comment", Kind: KindSelect, Section: DiastolicHeading, Choices: []string{
		"1. No diastolic dysfunction", "2. Grade 1 diastolic dysfunction",
		"3. Grade 2 diastolic dysfunction", "4. Grade 3 diastolic dysfunction"}},

	// Chamber dimensions and function
	{Name: "LA", Label: "LA", Kind: KindSelect, Section: ChamberHeading, Choices: []string{"1. Normal", "2. Dilated", "3. Giant"}},
	{Name: "LA diameter", Label: "LA diameter", Kind: KindNumber, Section: ChamberHeading, Unit: "cm"},
	{Name: "LA Comments", Label: "LA Comments", Kind: KindText, Section: ChamberHeading, Placeholder: "Any specific LA findings"},
	{Name: "RA", Label: "RA", Kind: KindSelect, Section: ChamberHeading, Choices: []string{"1. Normal", "2. Dilated"}},
	{Name: "RA diameter", Label: "RA diameter", Kind: KindNumber, Section: ChamberHeading, Unit: "cm"},
	{Name: "RA Comments", Label: "RA Comments", Kind: KindText, Section: ChamberHeading, Placeholder: "Any specific RA findings"},
	{Name: "RV", Label: "RV", Kind: KindSelect, Section: ChamberHeading, Choices: []string{"1. Normal", "2. Dilated", "3. RV hypertrophy"}},
	{Name: "RV Comments", Label: "RV Comments", Kind: KindText, Section: ChamberHeading, Placeholder: "Any specific RV findings"},
	{Name: "TAPSE", Label: "TAPSE", Kind: KindNumber, Section: ChamberHeading, Unit: "cm", Tooltip: "Tricuspid Annular Plane Systolic Excursion"},

	// Mitral valve assessment
	{Name: "Mitral valve", Label: "Mitral valve", Kind: KindSelect, Section: MitralHeading, Choices: []string{
		"1. Normal", "2. Thickened", "3. Myxomatous", "4. Rheumatic", "5. Prolapse", "6. Prosthetic"}},
	{Name: "MV Vegatations", Label: "Vegatations", Kind: KindSelect, Section: MitralHeading, Choices: []string{
		"1. None", "2. Attached to anterior leaflet", "3. Vegetation attached to posterior leaflet"}},
	{Name: "MV Comment on vegetation", Label: "Comment on vegetation", Kind: KindText, Section: MitralHeading, Placeholder: "Detailed description of vegetation"},
	{Name: "Mitral Regurgitation", Label: "Mitral Regurgitation", Kind: KindSelect, Section: MitralHeading, Choices: []string{
		"1. No", "2. Trivial", "3. Mild", "4. Moderate", "5. Severe"}},
	{Name: "VC", Label: "VC", Kind: KindNumber, Section: MitralHeading, Unit: "cm",
		Visibility: When("Mitral Regurgitation", mrPresent...)},
	{Name: "EROA (PISA)", Label: "EROA (PISA)", Kind: KindNumber, Section: MitralHeading, Unit: "cm²",
		Visibility: When("Mitral Regurgitation", mrPresent...)},
	{Name: "Mitral regurgitation assessment", Label: "Mitral regurgitation assessment", Kind: KindText, Section: MitralHeading, Placeholder: "Overall assessment/qualifiers",
		Visibility: When("Mitral Regurgitation", mrPresent...)},
	{Name: "Mitral stenosis", Label: "Mitral stenosis", Kind: KindSelect, Section: MitralHeading, Choices: []string{
		"1. No", "2. Mild", "3. Moderate", "4. Tight"}},
	{Name: "Mitral valve area (Trace)", Label: "Mitral valve area (Trace)", Kind: KindNumber, Section: MitralHeading, Unit: "cm²",
		Visibility: When("Mitral stenosis", msPresent...)},
	{Name: "Mitral valve area (Doppler)", Label: "Mitral valve area (Doppler)", Kind: KindNumber, Section: MitralHeading, Unit: "cm²",
		Visibility: When("Mitral stenosis", msPresent...)},
	{Name: "Mitral valve Max PG", Label: "Mitral valve Max PG", Kind: KindNumber, Section: MitralHeading, Unit: "mmHg",
		Visibility: When("Mitral stenosis", msPresent...)},
	{Name: "Mitral Valve Mean PG", Label: "Mitral Valve Mean PG", Kind: KindNumber, Section: MitralHeading, Unit: "mmHg",
		Visibility: When("Mitral stenosis", msPresent...)},
	{Name: "Score Thickening", Label: "Thickening", Kind: KindNumber, Section: MitralHeading,
		Visibility: When("Mitral stenosis", msPresent...)},
	{Name: "Score Calcification", Label: "Calcification", Kind: KindNumber, Section: MitralHeading,
		Visibility: When("Mitral stenosis", msPresent...)},
	{Name: "Score Sub valvular", Label: "Sub valvular", Kind: KindNumber, Section: MitralHeading,
		Visibility: When("Mitral stenosis", msPresent...)},
	{Name: "Score Pliability", Label: "Pliability", Kind: KindNumber, Section: MitralHeading,
		Visibility: When("Mitral stenosis", msPresent...)},
	{Name: "Score Total", Label: "Total Score", Kind: KindNumber, Section: MitralHeading, ReadOnly: true, Tooltip: "Autofilled total score",
		Visibility: When("Mitral stenosis", msPresent...)},
	{Name: "Special comments on mitral valve", Label: "Special comments on mitral valve", Kind: KindText, Section: MitralHeading, Placeholder: "Any specific comments on the Mitral Valve",
		Visibility: When("Mitral stenosis", msPresent...)},

	// Aortic valve assessment
	{Name: "Aortic valve", Label: "Aortic valve", Kind: KindSelect, Section: AorticHeading, Choices: []string{
		"1. Normal", "2. Sclerosed", "3. Calcified", "4. Tricuspid", "5. Bicuspid"}},
	{Name: "AV Vegatations", Label: "Vegatations", Kind: KindSelect, Section: AorticHeading, Choices: []string{
		"1. None", "2. Attached to anterior leaflet", "3. Vegetation attached to posterior leaflet"}},
	{Name: "AV Comment on vegetation", Label: "Comment on vegetation", Kind: KindText, Section: AorticHeading, Placeholder: "Detailed description of AV vegetation"},
	{Name: "Aortic annulus", Label: "Aortic annulus", Kind: KindNumber, Section: AorticHeading, Unit: "cm"},
	{Name: "Aortic sinuses", Label: "Aortic sinuses", Kind: KindNumber, Section: AorticHeading, Unit: "cm"},
	{Name: "Sino - tubular junction", Label: "Sino - tubular junction", Kind: KindNumber, Section: AorticHeading, Unit: "cm"},
	{Name: "Ascending aorta", Label: "Ascending aorta", Kind: KindNumber, Section: AorticHeading, Unit: "cm"},
	{Name: "Aortic regurgitation", Label: "Aortic regurgitation", Kind: KindSelect, Section: AorticHeading, Choices: []string{
		"1. No", "2. Mild", "3. Moderate", "4. Severe"}},
	{Name: "AI P1/2", Label: "AI P1/2", Kind: KindNumber, Section: AorticHeading, Unit: "m/s",
		Visibility: When("Aortic regurgitation", arPresent...)},
	{Name: "LVOT diamater", Label: "LVOT diamater", Kind: KindNumber, Section: AorticHeading, Unit: "mm",
		Visibility: When("Aortic regurgitation", arPresent...)},
	{Name: "Regurgitant jet width", Label: "Regurgitant jet width", Kind: KindNumber, Section: AorticHeading, Unit: "mm",
		Visibility: When("Aortic regurgitation", arPresent...)},
	{Name: "Jet width/ LOVT diameter", Label: "Jet width/ LOVT diameter", Kind: KindNumber, Section: AorticHeading,
		Visibility: When("Aortic regurgitation", arPresent...)},
	{Name: "Diastolic flow reversal in decending aorta", Label: "Diastolic flow reversal in decending aorta", Kind: KindSelect, Section: AorticHeading,
		Choices:    []string{"1. Present", "2. Absent"},
		Visibility: When("Aortic regurgitation", arPresent...)},
	{Name: "Aortic stenosis", Label: "Aortic stenosis", Kind: KindSelect, Section: AorticHeading, Choices: []string{
		"1. No", "2. Mild", "3. Moderate", "4. Severe"}},
	{Name: "Aortic valve maximum pressure gradient", Label: "Aortic valve maximum pressure gradient", Kind: KindNumber, Section: AorticHeading, Unit: "mmHg",
		Visibility: When("Aortic stenosis", asPresent...)},
	{Name: "Aortic valve mean pressure gradient", Label: "Aortic valve mean pressure gradient", Kind: KindNumber, Section: AorticHeading, Unit: "mmHg",
		Visibility: When("Aortic stenosis", asPresent...)},
	{Name: "Aortic valve VTI", Label: "Aortic valve VTI", Kind: KindNumber, Section: AorticHeading, Unit: "cm",
		Visibility: When("Aortic stenosis", asPresent...)},
	{Name: "LVOT VTI", Label: "LVOT VTI", Kind: KindNumber, Section: AorticHeading, Unit: "cm",
		Visibility: When("Aortic stenosis", asPresent...)},
	{Name: "LVOT Diameter", Label: "LVOT Diameter", Kind: KindNumber, Section: AorticHeading, Unit: "cm",
		Visibility: When("Aortic stenosis", asPresent...)},
	{Name: "AVA", Label: "AVA", Kind: KindNumber, Section: AorticHeading, Unit: "cm²",
		Visibility: When("Aortic stenosis", asPresent...)},

	// Tricuspid valve assessment
	{Name: "Tricuspid valve", Label: "Tricuspid valve", Kind: KindSelect, Section: TricuspidHeading, Choices: []string{"1. Normal"}},
	{Name: "TV Vegatations", Label: "Vegatations", Kind: KindSelect, Section: TricuspidHeading, Choices: []string{
		"1. None", "2. Attached to anterior leaflet", "3. Vegetation attached to posterior leaflet"}},
	{Name: "TV Comment on vegetation", Label: "Comment on vegetation", Kind: KindText, Section: TricuspidHeading, Placeholder: "Detailed description of TV vegetation"},
	{Name: "Tricuspid regurgitation", Label: "Tricuspid regurgitation", Kind: KindSelect, Section: TricuspidHeading, Choices: []string{
		"1. None", "2. Mild", "3. Moderate", "4. Severe", "5. Massive", "6. Torrential"}},
	{Name: "TRPG", Label: "TRPG", Kind: KindNumber, Section: TricuspidHeading, Unit: "mmHg",
		Visibility: When("Tricuspid regurgitation", trPresent...)},
	{Name: "VC diameter", Label: "VC diameter", Kind: KindNumber, Section: TricuspidHeading, Unit: "mm",
		Visibility: When("Tricuspid regurgitation", trPresent...)},
	{Name: "EROA (pisa)", Label: "EROA (pisa)", Kind: KindNumber, Section: TricuspidHeading, Unit: "mm²",
		Visibility: When("Tricuspid regurgitation", trPresent...)},
	{Name: "Hepatic vein flow", Label: "Hepatic vein flow", Kind: KindSelect, Section: TricuspidHeading,
		Choices:    []string{"1. Dominant", "2.Blunt", "3. Systolic flow reversal"},
		Visibility: When("Tricuspid regurgitation", trPresent...)},
	{Name: "Tricuspid stenosis", Label: "Tricuspid stenosis", Kind: KindSelect, Section: TricuspidHeading, Choices: []string{
		"1. No", "2. Mild", "3. Moderate", "4. Severe"}},
	{Name: "TV Comments", Label: "TV Comments", Kind: KindText, Section: TricuspidHeading, Placeholder: "Any specific TV findings"},

	// Pulmonary valve assessment
	{Name: "Pulmonary valve", Label: "Pulmonary valve", Kind: KindSelect, Section: PulmonaryHeading, Choices: []string{"1. Normal"}},
	{Name: "PV Vegatations", Label: "Vegatations", Kind: KindSelect, Section: PulmonaryHeading, Choices: []string{
		"1. None", "2. Attached to anterior leaflet", "3. Vegetation attached to posterior leaflet"}},
	{Name: "PV Comment on vegetation", Label: "Comment on vegetation", Kind: KindText, Section: PulmonaryHeading, Placeholder: "Detailed description of PV vegetation"},
	{Name: "Pulmonary stenosis", Label: "Pulmonary stenosis", Kind: KindSelect, Section: PulmonaryHeading, Choices: []string{
		"1. No", "2. Mild", "3. Moderate", "4. Severe"}},
	{Name: "Pulmonary valve maximum pressure gradients", Label: "Pulomonary valve maximum pressure gradients", Kind: KindNumber, Section: PulmonaryHeading, Unit: "mmHg",
		Visibility: When("Pulmonary stenosis", psPresent...)},
	{Name: "Pulmonary valve mean pressure gradient", Label: "Pulmonary valve mean pressure gradient", Kind: KindNumber, Section: PulmonaryHeading, Unit: "mmHg",
		Visibility: When("Pulmonary stenosis", psPresent...)},
	{Name: "Peak velocity", Label: "Peak velocity", Kind: KindNumber, Section: PulmonaryHeading, Unit: "cm/s",
		Visibility: When("Pulmonary stenosis", psPresent...)},
	{Name: "Pulmonary regurgitation", Label: "Pulmonary regurgitation", Kind: KindSelect, Section: PulmonaryHeading, Choices: []string{
		"1. No", "2. Mild", "3. Moderate", "4. Severe"}},
	{Name: "PV Comments", Label: "PV Comments", Kind: KindText, Section: PulmonaryHeading, Placeholder: "Any specific PV findings"},

	// Septal assessment
	{Name: "Intra atrial septum", Label: "Intra atrial septum", Kind: KindSelect, Section: SeptalHeading, Choices: []string{
		"1. Intact", "2. Echo drop out with no colour crossing", "3. Colour crossing",
		"4. Atrial septal defect", "5. Bulding to right side", "6. D shaped"}},
	{Name: "IAS Special Comments", Label: "Special comments", Kind: KindText, Section: SeptalHeading, Placeholder: "Specify findings on Interatrial Septum"},
	{Name: "Intra ventricular septum", Label: "Intra ventricular septum", Kind: KindSelect, Section: SeptalHeading, Choices: []string{
		"1. Intact", "2. Peri membranous VSD", "3. Muscual VSD"}},
	{Name: "IVS Special Comments", Label: "Special comments", Kind: KindText, Section: SeptalHeading, Placeholder: "Specify findings on Interventricular Septum"},

	// Report summary and recommendations
	{Name: "Pericardium", Label: "Pericardium", Kind: KindSelect, Section: SummaryHeading,
		Choices: append([]string{"1. No effusion"}, effusionOptions...)},
	{Name: "Effusion Measurement Anterior", Label: "Effusion Measurement (Anterior)", Kind: KindNumber, Section: SummaryHeading, Unit: "mm", Tooltip: "Measured depth in millimeters",
		Visibility: When("Pericardium", effusionOptions...)},
	{Name: "Effusion Measurement Inferior", Label: "Effusion Measurement (Inferior)", Kind: KindNumber, Section: SummaryHeading, Unit: "mm", Tooltip: "Measured depth in millimeters",
		Visibility: When("Pericardium", effusionOptions...)},
	{Name: "Effusion Measurement Medial", Label: "Effusion Measurement (Medial)", Kind: KindNumber, Section: SummaryHeading, Unit: "mm", Tooltip: "Measured depth in millimeters",
		Visibility: When("Pericardium", effusionOptions...)},
	{Name: "Effusion Measurement Lateral", Label: "Effusion Measurement (Lateral)", Kind: KindNumber, Section: SummaryHeading, Unit: "mm", Tooltip: "Measured depth in millimeters",
		Visibility: When("Pericardium", effusionOptions...)},
	{Name: "Effusion Measurement Apical", Label: "Effusion Measurement (Apical)", Kind: KindNumber, Section: SummaryHeading, Unit: "mm", Tooltip: "Measured depth in millimeters",
		Visibility: When("Pericardium", effusionOptions...)},
	{Name: "LV systolic function summary", Label: "LV systolic function summary", Kind: KindText, Section: SummaryHeading, Narrative: true, Placeholder: "LV systolic function summary"},
	{Name: "LV diastolic function summary", Label: "LV diastolic function summary", Kind: KindText, Section: SummaryHeading, Narrative: true, Placeholder: "LV diastolic function summary"},
	{Name: "Valves summary", Label: "Valves summary", Kind: KindText, Section: SummaryHeading, Narrative: true, Placeholder: "Valves summary"},
	{Name: "Conclusion", Label: "Conclusion", Kind: KindText, Section: SummaryHeading, Narrative: true, Placeholder: "Overall final summary"},
	{Name: "Recommendation", Label: "Recommendation", Kind: KindSelect, Section: SummaryHeading, Narrative: true, Choices: []string{
		"1. Follow up Echo in 1 year", "2. Follow up Echo in 2 years",
		"3. Follow up Echo in 6 months", "4. For cardiac intervention"}},
})
