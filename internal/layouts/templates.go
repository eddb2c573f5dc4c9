package layouts

const developerTemplate = `
<h1 style="text-align:center;font-size:32px;margin-bottom:4px;">
  <strong>{name}</strong>
</h1>
<p style="text-align:center;">{contact_info}</p>

<p style="font-size:18px;font-weight:700;margin-top:18px;"><strong>SUMMARY</strong></p>
<p>{summary}</p>

<p style="font-size:18px;font-weight:700;margin-top:18px;"><strong>WORK EXPERIENCE</strong></p>
{experience_block}

<p style="font-size:18px;font-weight:700;margin-top:18px;"><strong>PROJECTS</strong></p>
{projects_block}

<p style="font-size:18px;font-weight:700;margin-top:18px;"><strong>SKILLS</strong></p>
<p>{skills_text}</p>

<p style="font-size:18px;font-weight:700;margin-top:18px;"><strong>EDUCATION</strong></p>
{education_block}
`

const teacherTemplate = `
<h1 style="text-align:center;font-size:32px;margin-bottom:4px;">
  <strong>{name}</strong>
</h1>
<p style="text-align:center;">{contact_info}</p>

<p style="font-size:18px;font-weight:700;margin-top:18px;"><strong>SUMMARY</strong></p>
<p>{summary}</p>

<p style="font-size:18px;font-weight:700;margin-top:18px;"><strong>TEACHING EXPERIENCE</strong></p>
{experience_block}

<p style="font-size:18px;font-weight:700;margin-top:18px;"><strong>SKILLS</strong></p>
<p>{skills_text}</p>

<p style="font-size:18px;font-weight:700;margin-top:18px;"><strong>EDUCATION</strong></p>
{education_block}

<p style="font-size:18px;font-weight:700;margin-top:18px;"><strong>CERTIFICATIONS</strong></p>
{certifications_block}
`

const doctorTemplate = `
<h1 style="text-align:center;font-size:32px;margin-bottom:4px;">
  <strong>{name}</strong>
</h1>
<p style="text-align:center;">{contact_info}</p>

<p style="font-size:18px;font-weight:700;margin-top:18px;"><strong>PROFESSIONAL SUMMARY</strong></p>
<p>{summary}</p>

<p style="font-size:18px;font-weight:700;margin-top:18px;"><strong>CLINICAL EXPERIENCE</strong></p>
{experience_block}

<p style="font-size:18px;font-weight:700;margin-top:18px;"><strong>SKILLS & EXPERTISE</strong></p>
<p>{skills_text}</p>

<p style="font-size:18px;font-weight:700;margin-top:18px;"><strong>EDUCATION</strong></p>
{education_block}

<p style="font-size:18px;font-weight:700;margin-top:18px;"><strong>LICENSES & CERTIFICATIONS</strong></p>
{licenses_block}
`

const bankerTemplate = `
<h1 style="text-align:center;"><strong>{name}</strong></h1>
<p style="text-align:center;">{contact_info}</p>

<h2>SUMMARY</h2>
<p>{summary}</p>

<h2>FINANCIAL EXPERIENCE</h2>
{experience_block}

<h2>SKILLS</h2>
<p>{skills_text}</p>

<h2>EDUCATION</h2>
{education_block}

<h2>ACHIEVEMENTS</h2>
{achievements_block}
`

const designerTemplate = `
<h1 style="text-align:center;"><strong>{name}</strong></h1>
<p style="text-align:center;">{contact_info}</p>

<h2>SUMMARY</h2>
<p>{summary}</p>

<h2>DESIGN EXPERIENCE</h2>
{experience_block}

<h2>PROJECTS</h2>
{projects_block}

<h2>SKILLS</h2>
<p>{skills_text}</p>

<h2>EDUCATION</h2>
{education_block}

<h2>PORTFOLIO</h2>
<p>{portfolio_link}</p>
`
