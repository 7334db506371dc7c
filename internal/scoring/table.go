package scoring

// Table maps question id and option value to its contribution.
type Table map[string]map[string]Contribution

// DefaultTable holds the weights of the health questionnaire. Family
// history entries are age-scaled; lifestyle entries are not.
var DefaultTable = Table{
	"age": {
		"30to39": {Points: Points{Overall: 1}},
		"40to49": {Points: Points{Overall: 2, Cancer: 1, Cardio: 1}},
		"50to59": {Points: Points{Overall: 3, Cancer: 2, Cardio: 2, Brain: 1}, Reason: "age_50plus"},
		"over60": {Points: Points{Overall: 5, Cancer: 3, Cardio: 3, Brain: 2}, Reason: "age_50plus"},
	},
	"bmi": {
		"underweight": {Points: Points{Overall: 1}},
		"overweight":  {Points: Points{Overall: 1, Metabolic: 2, Cardio: 1}},
		"obese":       {Points: Points{Overall: 3, Metabolic: 4, Cardio: 2, Liver: 1}, Reason: "obesity"},
	},
	"smoking": {
		"quit":       {Points: Points{Overall: 1, Cancer: 1}},
		"occasional": {Points: Points{Overall: 2, Cancer: 2, Cardio: 1}},
		"regular":    {Points: Points{Overall: 4, Cancer: 4, Cardio: 2}, Reason: "smoking"},
	},
	"smokingYears": {
		"under10": {Points: Points{Cancer: 1}},
		"10to20":  {Points: Points{Overall: 1, Cancer: 2}},
		"over20":  {Points: Points{Overall: 2, Cancer: 3, Cardio: 1}, Reason: "smoking"},
	},
	"drinking": {
		"weekly": {Points: Points{Overall: 1, Liver: 2, Digestive: 1}},
		"daily":  {Points: Points{Overall: 3, Liver: 4, Digestive: 2, Cancer: 1}, Reason: "alcohol"},
	},
	"exercise": {
		"rare":      {Points: Points{Overall: 1, Metabolic: 1}},
		"sedentary": {Points: Points{Overall: 2, Metabolic: 2, Cardio: 1}, Reason: "sedentary"},
	},
	"diet": {
		"high_salt":       {Points: Points{Digestive: 1, Cardio: 1}},
		"high_fat":        {Points: Points{Metabolic: 1, Cardio: 1}},
		"processed":       {Points: Points{Cancer: 1, Digestive: 1}},
		"irregular_meals": {Points: Points{Digestive: 1}},
		"spicy":           {Points: Points{Digestive: 1}},
	},
	"sleep": {
		"poor": {Points: Points{Overall: 1, Brain: 1}},
	},
	"stress": {
		"high": {Points: Points{Overall: 1, Cardio: 1, Digestive: 1}, Reason: "stress"},
	},
	"chronicConditions": {
		"hypertension":    {Points: Points{Overall: 3, Cardio: 3, Brain: 1}, Reason: "hypertension"},
		"diabetes":        {Points: Points{Overall: 3, Metabolic: 3, Cardio: 2}, Reason: "diabetes"},
		"dyslipidemia":    {Points: Points{Overall: 2, Cardio: 2, Metabolic: 1}},
		"fatty_liver":     {Points: Points{Overall: 2, Liver: 3, Metabolic: 1}, Reason: "liver_disease"},
		"hepatitis":       {Points: Points{Overall: 3, Liver: 4, Cancer: 2}, Reason: "liver_disease"},
		"thyroid_disease": {Points: Points{Overall: 1, Cancer: 1}},
		"heart_disease":   {Points: Points{Overall: 4, Cardio: 5}, Reason: "heart_history"},
		"stroke_history":  {Points: Points{Overall: 4, Brain: 5, Cardio: 2}, Reason: "stroke_history"},
	},
	"medications": {
		"one_or_two": {Points: Points{Overall: 1}},
		"three_plus": {Points: Points{Overall: 2}},
	},
	"familyCancer": {
		"stomach":    {Points: Points{Overall: 2, Cancer: 3, Digestive: 1}, AgeScaled: true, Reason: "family_cancer"},
		"colorectal": {Points: Points{Overall: 2, Cancer: 3, Digestive: 1}, AgeScaled: true, Reason: "family_colorectal"},
		"liver":      {Points: Points{Overall: 2, Cancer: 2, Liver: 2}, AgeScaled: true, Reason: "family_cancer"},
		"lung":       {Points: Points{Overall: 2, Cancer: 3}, AgeScaled: true, Reason: "family_cancer"},
		"pancreatic": {Points: Points{Overall: 2, Cancer: 3, Digestive: 1}, AgeScaled: true, Reason: "family_cancer"},
		"thyroid":    {Points: Points{Overall: 1, Cancer: 2}, AgeScaled: true, Reason: "family_cancer"},
		"breast":     {Points: Points{Overall: 2, Cancer: 3}, AgeScaled: true, Gender: "female", Reason: "family_cancer"},
		"prostate":   {Points: Points{Overall: 2, Cancer: 3}, AgeScaled: true, Gender: "male", Reason: "family_cancer"},
	},
	"familyCardio": {
		"heart_attack": {Points: Points{Overall: 2, Cardio: 3}, AgeScaled: true, Reason: "family_cardio"},
		"stroke":       {Points: Points{Overall: 2, Brain: 3, Cardio: 1}, AgeScaled: true, Reason: "family_cardio"},
		"hypertension": {Points: Points{Overall: 1, Cardio: 2}, AgeScaled: true},
		"diabetes":     {Points: Points{Overall: 1, Metabolic: 2}, AgeScaled: true},
	},
	"familyDementia": {
		"yes": {Points: Points{Overall: 1, Brain: 3}, AgeScaled: true, Reason: "family_dementia"},
	},
	"digestiveSymptoms": {
		"blood":          {Points: Points{Overall: 3, Digestive: 5, Cancer: 4}, Reason: "blood_in_stool"},
		"heartburn":      {Points: Points{Digestive: 2}},
		"indigestion":    {Points: Points{Digestive: 2}},
		"abdominal_pain": {Points: Points{Digestive: 3}, Reason: "digestive_symptoms"},
		"bowel_change":   {Points: Points{Overall: 1, Digestive: 3, Cancer: 1}, Reason: "bowel_change"},
		"weight_loss":    {Points: Points{Overall: 2, Digestive: 2, Cancer: 2}, Reason: "weight_loss"},
	},
	"stomachHistory": {
		"gastritis": {Points: Points{Digestive: 2}},
		"ulcer":     {Points: Points{Digestive: 3}, Reason: "stomach_history"},
		"h_pylori":  {Points: Points{Digestive: 3, Cancer: 1}, Reason: "stomach_history"},
		"polyps":    {Points: Points{Digestive: 3, Cancer: 2}, Reason: "stomach_history"},
	},
	"endoscopyHistory": {
		"over2": {Points: Points{Digestive: 1}},
		"never": {Points: Points{Digestive: 2}, Reason: "no_endoscopy"},
	},
	"colonoscopyHistory": {
		"over5": {Points: Points{Digestive: 1}},
		"never": {Points: Points{Digestive: 2, Cancer: 1}, Reason: "no_colonoscopy"},
	},
	"liverSymptoms": {
		"fatigue":          {Points: Points{Liver: 1}},
		"jaundice":         {Points: Points{Overall: 2, Liver: 4, Digestive: 2}, Reason: "jaundice"},
		"right_upper_pain": {Points: Points{Liver: 2, Digestive: 1}},
	},
	"liverTests": {
		"elevated": {Points: Points{Overall: 2, Liver: 4}, Reason: "liver_tests"},
		"unknown":  {Points: Points{Liver: 1}},
	},
	"cardioSymptoms": {
		"chest_pain":   {Points: Points{Overall: 3, Cardio: 5}, Reason: "chest_pain"},
		"palpitations": {Points: Points{Cardio: 3}},
		"short_breath": {Points: Points{Overall: 1, Cardio: 3}},
		"leg_swelling": {Points: Points{Cardio: 2}},
	},
	"bloodPressure": {
		"elevated": {Points: Points{Cardio: 1}},
		"high":     {Points: Points{Overall: 2, Cardio: 3}, Reason: "hypertension"},
	},
	"cholesterol": {
		"borderline": {Points: Points{Cardio: 1, Metabolic: 1}},
		"high":       {Points: Points{Overall: 1, Cardio: 2, Metabolic: 2}, Reason: "cholesterol"},
	},
	"bloodSugar": {
		"prediabetes": {Points: Points{Metabolic: 2}},
		"high":        {Points: Points{Overall: 2, Metabolic: 4}, Reason: "diabetes"},
	},
	"neuroSymptoms": {
		"headache":  {Points: Points{Brain: 2}},
		"dizziness": {Points: Points{Brain: 2, Cardio: 1}},
		"memory":    {Points: Points{Brain: 3}, Reason: "memory"},
		"numbness":  {Points: Points{Brain: 3, Cardio: 1}, Reason: "numbness"},
	},
	"respiratorySymptoms": {
		"chronic_cough": {Points: Points{Cancer: 1}},
		"blood_sputum":  {Points: Points{Overall: 3, Cancer: 4}, Reason: "blood_sputum"},
		"wheezing":      {Points: Points{Cardio: 1}},
	},
	"lungScreening": {
		"over2": {Points: Points{Cancer: 1}},
		"never": {Points: Points{Cancer: 2}, Reason: "no_lung_screen"},
	},
	"thyroidCheck": {
		"nodule":    {Points: Points{Cancer: 2}, Reason: "thyroid_nodule"},
		"diagnosed": {Points: Points{Cancer: 1}},
	},
	"maleProstate": {
		"urinary_issues": {Points: Points{Cancer: 1}, Gender: "male"},
		"elevated_psa":   {Points: Points{Overall: 2, Cancer: 4}, Gender: "male", Reason: "elevated_psa"},
		"never_tested":   {Points: Points{Cancer: 1}, Gender: "male"},
	},
	"femaleBreast": {
		"lump":           {Points: Points{Overall: 2, Cancer: 4}, Gender: "female", Reason: "breast_lump"},
		"never_screened": {Points: Points{Cancer: 1}, Gender: "female"},
	},
	"femaleGyn": {
		"irregular_bleeding": {Points: Points{Overall: 1, Cancer: 3}, Gender: "female", Reason: "gyn_bleeding"},
		"overdue":            {Points: Points{Cancer: 1}, Gender: "female"},
	},
	"femaleHormone": {
		"menopause_symptoms": {Points: Points{Metabolic: 1, Cardio: 1}, Gender: "female"},
		"hrt":                {Points: Points{Cancer: 1}, Gender: "female"},
	},
	"lastCheckup": {
		"1to3":  {Points: Points{Overall: 1}},
		"over3": {Points: Points{Overall: 2}, Reason: "overdue_checkup"},
		"never": {Points: Points{Overall: 3}, Reason: "overdue_checkup"},
	},
	"checkupGoal": {
		"comprehensive": {Points: Points{Overall: 2}},
		"deepest":       {Reason: "deepest_requested"},
	},
}
